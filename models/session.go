package models

// SessionState is the client-local record of who is currently signed in.
//
// It is a snapshot taken at sign-in time: later roster edits do not refresh
// it. The staleness window is accepted — the session only drives navigation
// and display, never authorization of roster mutations (the admin gate does
// that separately).
type SessionState struct {
	// Authenticated is true between a successful sign-in and a sign-out.
	Authenticated bool `json:"authenticated"`

	// Admin is true when the signed-in account carries the reserved
	// administrator email. Informational: it selects the post-login
	// screen, it is not the admin-panel gate.
	Admin bool `json:"admin"`

	// CurrentUser is the account snapshot captured at sign-in,
	// or nil when no one is signed in.
	CurrentUser *User `json:"current_user,omitempty"`
}

// Credentials is the opt-in "remember me" payload persisted on the client
// and read once at startup to prefill the sign-in form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
