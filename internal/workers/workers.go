package workers

type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers. Run starts them in
// the order they were passed.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down every worker that implements [Stopper], in reverse start
// order. Workers without a Stop method are skipped.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if stopper, ok := w.workers[i].(Stopper); ok {
			stopper.Stop()
		}
	}
}
