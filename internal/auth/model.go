// Package auth implements the credential store: a local registry of
// operator accounts plus the current session, both persisted as JSON
// snapshots in the key-value storage.
package auth

// User is a registered operator account. Passwords are stored and compared
// in plain text; the registry is local and single-user by design.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the outcome of the most recent credential operation. It is
// persisted after every operation but semantically transient: Error is the
// only channel through which domain failures reach the caller.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	CurrentUser     *User  `json:"currentUser"`
	Error           string `json:"error"`
}
