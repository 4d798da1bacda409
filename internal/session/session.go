// Package session holds the authentication state for the single active user
// interaction: at most one account is logged in at any time.
package session

import (
	"errors"

	"github.com/bankist-dev/bankist/internal/model"
	"github.com/bankist-dev/bankist/internal/registry"
)

var (
	// ErrAccountNotFound means no account has the given username.
	ErrAccountNotFound = errors.New("account not found")
	// ErrBadCredential means the username exists but the PIN did not match.
	ErrBadCredential = errors.New("bad credential")
)

// Session is a borrowed reference into the registry; it never owns the
// account it points at.
type Session struct {
	current *model.Account
}

// New returns a logged-out session.
func New() *Session {
	return &Session{}
}

// Login authenticates against the registry. On success the session holds the
// account and returns it so the caller can render a greeting. On failure the
// session state is unchanged.
func (s *Session) Login(reg *registry.Service, username string, credential int) (*model.Account, error) {
	acc := reg.FindByUsername(username)
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	if acc.Credential() != credential {
		return nil, ErrBadCredential
	}
	s.current = acc
	return acc, nil
}

// Current returns the authenticated account, or nil when logged out.
func (s *Session) Current() *model.Account {
	return s.current
}

// LoggedIn reports whether an account is authenticated.
func (s *Session) LoggedIn() bool {
	return s.current != nil
}

// Logout drops the authenticated account. Account closure is the only caller;
// there is no user-facing logout.
func (s *Session) Logout() {
	s.current = nil
}
