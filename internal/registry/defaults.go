package registry

import (
	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// DefaultAccounts returns the built-in demo accounts used when no seed file
// is supplied.
func DefaultAccounts() []*model.Account {
	return []*model.Account{
		model.NewAccount("Jonas Schmedtmann", 1111, rate("1.2"),
			movements(200, 450, -400, 3000, -650, -130, 70, 1300)),
		model.NewAccount("Jessica Davis", 2222, rate("1.5"),
			movements(5000, 3400, -150, -790, -3210, -1000, 8500, -30)),
		model.NewAccount("Steven Thomas Williams", 3333, rate("0.7"),
			movements(200, -200, 340, -300, -20, 50, 400, -460)),
		model.NewAccount("Sarah Smith", 4444, rate("1"),
			movements(430, 1000, 700, 50, 90)),
	}
}

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func movements(amounts ...int64) []decimal.Decimal {
	movs := make([]decimal.Decimal, len(amounts))
	for i, amt := range amounts {
		movs[i] = decimal.NewFromInt(amt)
	}
	return movs
}
