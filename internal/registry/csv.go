package registry

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

const (
	numFields     = 4
	colOwner      = 0
	colRate       = 1
	colCredential = 2
	colMovements  = 3
)

// Load reads a seed accounts CSV and returns a Service with usernames derived.
func Load(path string) (*Service, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading seed accounts: %w", err)
	}
	return NewService(accts), nil
}

// Save writes the registry's accounts as a seed CSV.
func (s *Service) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating seed accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing seed accounts: %w", err)
	}
	return nil
}

// ReadAccounts reads a seed accounts CSV.
func ReadAccounts(r io.Reader) ([]*model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []*model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes a seed accounts CSV.
func WriteAccounts(w io.Writer, accounts []*model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"owner", "interest_rate", "credential", "movements"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row. Movements are joined with
// semicolons in chronological order.
func MarshalAccount(acct *model.Account) []string {
	movs := acct.Movements()
	parts := make([]string, len(movs))
	for i, m := range movs {
		parts[i] = m.String()
	}

	row := make([]string, numFields)
	row[colOwner] = acct.Owner()
	row[colRate] = acct.InterestRate().String()
	row[colCredential] = strconv.Itoa(acct.Credential())
	row[colMovements] = strings.Join(parts, ";")
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (*model.Account, error) {
	if len(record) != numFields {
		return nil, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if strings.TrimSpace(record[colOwner]) == "" {
		return nil, fmt.Errorf("owner must not be empty")
	}

	interestRate, err := decimal.NewFromString(record[colRate])
	if err != nil {
		return nil, fmt.Errorf("parsing interest_rate %q: %w", record[colRate], err)
	}
	if interestRate.IsNegative() {
		return nil, fmt.Errorf("interest_rate %q must not be negative", record[colRate])
	}

	credential, err := strconv.Atoi(record[colCredential])
	if err != nil {
		return nil, fmt.Errorf("parsing credential %q: %w", record[colCredential], err)
	}

	var movs []decimal.Decimal
	if record[colMovements] != "" {
		for _, part := range strings.Split(record[colMovements], ";") {
			m, err := decimal.NewFromString(part)
			if err != nil {
				return nil, fmt.Errorf("parsing movement %q: %w", part, err)
			}
			movs = append(movs, m)
		}
	}

	return model.NewAccount(record[colOwner], credential, interestRate, movs), nil
}
