package registry

import (
	"strings"
	"unicode"

	"github.com/bankist-dev/bankist/internal/model"
)

// Service provides in-memory lookup over the fixed set of accounts.
//
// The registry keeps accounts in registration order and does not check for
// derived-username collisions: two owners with the same initials both stay
// registered, and FindByUsername returns whichever was registered first.
type Service struct {
	accounts []*model.Account
}

// NewService creates a Service from a slice of accounts and derives their
// usernames. Derivation must happen before any lookup or login attempt.
func NewService(accounts []*model.Account) *Service {
	s := &Service{accounts: accounts}
	s.DeriveUsernames()
	return s
}

// DeriveUsernames assigns each account its derived username. Re-running is
// idempotent: the same owner always derives the same username, and an
// already-assigned username is never overwritten.
func (s *Service) DeriveUsernames() {
	for _, a := range s.accounts {
		a.SetUsername(DeriveUsername(a.Owner()))
	}
}

// DeriveUsername returns the lowercase initials of each whitespace-separated
// token of owner, concatenated in order ("Steven Thomas Williams" -> "stw").
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, token := range strings.Fields(owner) {
		r := []rune(token)[0]
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// All returns the accounts in registration order.
func (s *Service) All() []*model.Account {
	return s.accounts
}

// FindByUsername returns the first account with the given username, or nil.
// Absence is a normal outcome, not a fault.
func (s *Service) FindByUsername(username string) *model.Account {
	for _, a := range s.accounts {
		if a.Username() == username {
			return a
		}
	}
	return nil
}

// Remove deletes the account matching acc's username from the registry.
// Removing an account that is not registered is a no-op.
func (s *Service) Remove(acc *model.Account) {
	for i, a := range s.accounts {
		if a.Username() == acc.Username() {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return
		}
	}
}
