package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankist-dev/bankist/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func movs(amounts ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(amounts))
	for i, a := range amounts {
		out[i] = dec(a)
	}
	return out
}

func account(rate string, amounts ...string) *model.Account {
	return model.NewAccount("Jonas Schmedtmann", 1111, dec(rate), movs(amounts...))
}

func TestBalance(t *testing.T) {
	acc := account("1.2", "200", "450", "-400", "3000", "-650", "-130", "70", "1300")
	assert.True(t, Balance(acc).Equal(dec("3840")))
}

func TestBalanceEmptyHistory(t *testing.T) {
	acc := account("1.2")
	assert.True(t, Balance(acc).IsZero())
}

func TestIncomeAndExpense(t *testing.T) {
	acc := account("1.2", "200", "450", "-400", "3000", "-650", "-130", "70", "1300")

	assert.True(t, Income(acc).Equal(dec("5020")))
	assert.True(t, Expense(acc).Equal(dec("1180")), "expense is a non-negative magnitude")
}

func TestInterestQualifyingThreshold(t *testing.T) {
	// 80 * 1.2 / 100 = 0.96, below one currency unit: contributes nothing.
	acc := account("1.2", "80")
	assert.True(t, Interest(acc).IsZero())

	// 1300 * 1.2 / 100 = 15.6: included.
	acc = account("1.2", "1300")
	assert.True(t, Interest(acc).Equal(dec("15.6")))
}

func TestInterestSumsQualifyingDeposits(t *testing.T) {
	// Deposits 200, 450, 3000, 70, 1300 at 1.2%:
	// 2.4 + 5.4 + 36 + 15.6 = 59.4; the 70 deposit (0.84) is filtered out,
	// withdrawals never count.
	acc := account("1.2", "200", "450", "-400", "3000", "-650", "-130", "70", "1300")
	assert.True(t, Interest(acc).Equal(dec("59.4")))
}

func TestInterestExactlyOneUnit(t *testing.T) {
	// 100 * 1 / 100 = 1: the threshold is inclusive.
	acc := account("1", "100")
	assert.True(t, Interest(acc).Equal(dec("1")))
}

func TestSortedViewAscending(t *testing.T) {
	stored := movs("200", "-200", "340", "-300", "-20", "50", "400", "-460")

	view := SortedView(stored, true)
	require.Len(t, view, len(stored))
	for i := 1; i < len(view); i++ {
		assert.True(t, view[i-1].LessThanOrEqual(view[i]), "view[%d] out of order", i)
	}
}

func TestSortedViewChronological(t *testing.T) {
	stored := movs("200", "-200", "340")

	view := SortedView(stored, false)
	require.Len(t, view, 3)
	for i := range stored {
		assert.True(t, view[i].Equal(stored[i]))
	}
}

func TestSortedViewNeverMutatesStorage(t *testing.T) {
	stored := movs("340", "-200", "200")

	_ = SortedView(stored, true)
	assert.True(t, stored[0].Equal(dec("340")), "stored order must survive a sorted view")

	view := SortedView(stored, false)
	view[0] = dec("9999")
	assert.True(t, stored[0].Equal(dec("340")), "view must be a fresh slice")
}
