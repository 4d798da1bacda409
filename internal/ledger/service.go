// Package ledger implements the balance-affecting operations: transfer, loan
// and account closure. Each operation validates fully before mutating, so a
// rejection never leaves a partial effect.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/registry"
	"github.com/bankist-dev/bankist/internal/session"
	"github.com/bankist-dev/bankist/internal/summary"
)

// loanHistoryFraction is the creditworthiness proxy: a loan is grantable only
// if some single past movement covered at least this fraction of the amount.
var loanHistoryFraction = decimal.RequireFromString("0.1")

// Service applies operations against a registry on behalf of a session.
type Service struct {
	registry *registry.Service
}

// NewService creates a ledger Service bound to a registry.
func NewService(reg *registry.Service) *Service {
	return &Service{registry: reg}
}

// Transfer moves amount from the session's account to the account named by
// toUsername. Preconditions are checked in order: positive amount, recipient
// exists, sufficient balance, recipient is not the sender. On success the
// sender's history gains -amount and the recipient's gains +amount; the two
// appends happen together or not at all.
func (s *Service) Transfer(sess *session.Session, toUsername string, amount decimal.Decimal) error {
	if !sess.LoggedIn() {
		return ErrNotLoggedIn
	}
	sender := sess.Current()

	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	recipient := s.registry.FindByUsername(toUsername)
	if recipient == nil {
		return ErrUnknownRecipient
	}
	if summary.Balance(sender).LessThan(amount) {
		return ErrInsufficientFunds
	}
	if recipient.Username() == sender.Username() {
		return ErrSelfTransfer
	}

	sender.AddMovement(amount.Neg())
	recipient.AddMovement(amount)
	return nil
}

// RequestLoan grants a loan of amount if some single past movement covers at
// least 10% of it. A granted loan is recorded as a plain deposit: there is no
// separate loan ledger and no repayment tracking.
func (s *Service) RequestLoan(sess *session.Session, amount decimal.Decimal) error {
	if !sess.LoggedIn() {
		return ErrNotLoggedIn
	}
	acc := sess.Current()

	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	threshold := amount.Mul(loanHistoryFraction)
	qualified := false
	for _, m := range acc.Movements() {
		if m.GreaterThanOrEqual(threshold) {
			qualified = true
			break
		}
	}
	if !qualified {
		return ErrInsufficientHistory
	}

	acc.AddMovement(amount)
	return nil
}

// CloseAccount removes the session's account from the registry after the
// caller re-confirms the username and PIN. The account's data is discarded
// and the session is logged out.
func (s *Service) CloseAccount(sess *session.Session, confirmUsername string, confirmCredential int) error {
	if !sess.LoggedIn() {
		return ErrNotLoggedIn
	}
	acc := sess.Current()

	if confirmUsername != acc.Username() {
		return ErrCloseMismatch
	}
	if confirmCredential != acc.Credential() {
		return ErrCloseMismatch
	}

	s.registry.Remove(acc)
	sess.Logout()
	return nil
}
