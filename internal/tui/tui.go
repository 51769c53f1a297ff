// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the streaming panel. It wires the
// sign-in, admin gate, admin roster and realtime demo screens into a single
// Bubble Tea program routed by [RootModel].
package tui

import (
	"context"

	"github.com/MKhiriev/go-stream-panel/internal/adapter"
	"github.com/MKhiriev/go-stream-panel/internal/config"
	"github.com/MKhiriev/go-stream-panel/internal/logger"
	"github.com/MKhiriev/go-stream-panel/internal/service"
	"github.com/MKhiriev/go-stream-panel/internal/session"
	"github.com/MKhiriev/go-stream-panel/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter adapter.ServerAdapter
	syncer  service.Synchronizer
	session *session.Store
	app     config.PanelApp

	logger *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, syncer service.Synchronizer, sessionStore *session.Store, app config.PanelApp, logger *logger.Logger) *TUI {
	return &TUI{
		adapter: serverAdapter,
		syncer:  syncer,
		session: sessionStore,
		app:     app,
		logger:  logger,
	}
}

// Run starts the terminal program and blocks until the user quits. Roster
// change events from the synchronizer are forwarded into the program as
// [rosterChangedMsg] so the admin and realtime screens refresh live.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"login":    newLoginModel(ctx, t.adapter, t.session, t.app),
		"welcome":  newWelcomeModel(ctx, t.session),
		"gate":     newGateModel(ctx, t.adapter, t.session),
		"admin":    newAdminModel(ctx, t.adapter, t.syncer, t.session, t.app),
		"realtime": newRealtimeModel(ctx, t.adapter, t.syncer),
	}

	root := NewRootModel(pages, t.startPage())
	program := tea.NewProgram(root, tea.WithAltScreen())

	unwatch := t.syncer.Watch(ctx, func(roster []models.User) {
		program.Send(rosterChangedMsg{roster: roster})
	})
	defer unwatch()

	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// startPage picks the first screen from the persisted session: a signed-in
// administrator still has to pass the gate again because the gate token is
// never persisted.
func (t *TUI) startPage() string {
	state := t.session.Restore()
	switch {
	case state.Authenticated && state.Admin:
		return "gate"
	case state.Authenticated:
		return "welcome"
	default:
		return "login"
	}
}
