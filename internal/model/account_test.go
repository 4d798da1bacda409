package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewAccountCopiesMovements(t *testing.T) {
	seed := []decimal.Decimal{dec("200"), dec("-50")}
	acc := NewAccount("Jessica Davis", 2222, dec("1.5"), seed)

	// Mutating the seed slice must not reach the account.
	seed[0] = dec("9999")
	movs := acc.Movements()
	require.Len(t, movs, 2)
	assert.True(t, movs[0].Equal(dec("200")))
}

func TestMovementsReturnsCopy(t *testing.T) {
	acc := NewAccount("Jessica Davis", 2222, dec("1.5"), []decimal.Decimal{dec("200")})

	movs := acc.Movements()
	movs[0] = dec("-1")

	again := acc.Movements()
	assert.True(t, again[0].Equal(dec("200")), "caller must not be able to mutate the history")
}

func TestAddMovementAppends(t *testing.T) {
	acc := NewAccount("Jessica Davis", 2222, dec("1.5"), nil)

	acc.AddMovement(dec("100"))
	acc.AddMovement(dec("-30"))

	movs := acc.Movements()
	require.Len(t, movs, 2)
	assert.True(t, movs[0].Equal(dec("100")))
	assert.True(t, movs[1].Equal(dec("-30")))
}

func TestSetUsernameFirstAssignmentWins(t *testing.T) {
	acc := NewAccount("Jessica Davis", 2222, dec("1.5"), nil)
	assert.Empty(t, acc.Username())

	acc.SetUsername("jd")
	acc.SetUsername("other")
	assert.Equal(t, "jd", acc.Username())
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		owner string
		want  string
	}{
		{"Jessica Davis", "Jessica"},
		{"Steven Thomas Williams", "Steven"},
		{"Cher", "Cher"},
		{"", ""},
	}
	for _, tt := range tests {
		acc := NewAccount(tt.owner, 1, dec("1"), nil)
		assert.Equal(t, tt.want, acc.FirstName(), "FirstName(%q)", tt.owner)
	}
}
