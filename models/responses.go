package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful sign-in. Message mirrors the
// panel's toast text; Admin tells the client which screen to open next.
type LoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Admin   bool   `json:"admin"`
}

// VerifyRequest is the body of POST /api/admin/verify.
type VerifyRequest struct {
	Code string `json:"code"`
}

// UpdateResponse reports whether an update-by-id touched a row.
type UpdateResponse struct {
	Updated bool `json:"updated"`
}

// DeleteResponse reports whether a delete-by-id removed a row.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// RevisionResponse carries the server's roster revision counter. Clients
// poll it and refetch the roster whenever the value grows.
type RevisionResponse struct {
	Revision uint64 `json:"revision"`
}

// ErrorResponse is the uniform JSON error body of the REST API.
type ErrorResponse struct {
	Error string `json:"error"`
}
