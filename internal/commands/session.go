package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bankist-dev/bankist/internal/auditlog"
	"github.com/bankist-dev/bankist/internal/config"
	"github.com/bankist-dev/bankist/internal/ledger"
	"github.com/bankist-dev/bankist/internal/registry"
	"github.com/bankist-dev/bankist/internal/session"
	"github.com/bankist-dev/bankist/internal/summary"
)

func newSessionCommand() *cobra.Command {
	var workspace string
	var accountsFile string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive banking session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sessionOptions{currency: "€"}

			if workspace != "" {
				absDir, err := filepath.Abs(workspace)
				if err != nil {
					return fmt.Errorf("resolving path: %w", err)
				}
				cfg, err := config.Load(filepath.Join(absDir, "bankist.yaml"))
				if err != nil {
					return err
				}
				opts.currency = cfg.Bank.Currency
				opts.bankName = cfg.Bank.Name
				opts.auditRoot = absDir
				if accountsFile == "" {
					accountsFile = filepath.Join(absDir, cfg.Seed.AccountsFile)
				}
			}

			var reg *registry.Service
			if accountsFile != "" {
				var err error
				reg, err = registry.Load(accountsFile)
				if err != nil {
					return err
				}
			} else {
				reg = registry.NewService(registry.DefaultAccounts())
			}

			return runSession(os.Stdin, os.Stdout, reg, opts)
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace directory (config, seed accounts, audit log)")
	cmd.Flags().StringVar(&accountsFile, "accounts", "", "seed accounts CSV (overrides built-in demo accounts)")

	return cmd
}

type sessionOptions struct {
	bankName  string
	currency  string
	auditRoot string // "" disables the audit trail
}

// runSession drives the interactive read-eval-print loop. It is the view
// layer: all domain decisions live in session, ledger and summary; this
// function only parses input and renders results.
func runSession(in io.Reader, out io.Writer, reg *registry.Service, opts sessionOptions) error {
	sess := session.New()
	ops := ledger.NewService(reg)
	sorted := false

	if opts.bankName != "" {
		fmt.Fprintf(out, "%s\n", opts.bankName)
	}
	fmt.Fprintln(out, `Log in to get started ("help" lists commands).`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "bankist> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printHelp(out)

		case "login":
			if len(fields) != 3 {
				fmt.Fprintln(out, "usage: login <username> <pin>")
				continue
			}
			pin, err := strconv.Atoi(fields[2])
			if err != nil {
				fmt.Fprintln(out, "pin must be a number")
				continue
			}
			acc, err := sess.Login(reg, fields[1], pin)
			if err != nil {
				fmt.Fprintf(out, "login failed: %v\n", err)
				continue
			}
			sorted = false
			fmt.Fprintf(out, "Welcome back, %s\n", acc.FirstName())
			renderStatement(out, acc.Movements(), false, opts.currency)
			renderSummary(out, sess, opts.currency)
			audit(opts.auditRoot, acc.Username(), "login", "", "")

		case "statement":
			if !requireLogin(out, sess) {
				continue
			}
			renderStatement(out, sess.Current().Movements(), sorted, opts.currency)

		case "sort":
			if !requireLogin(out, sess) {
				continue
			}
			sorted = !sorted
			renderStatement(out, sess.Current().Movements(), sorted, opts.currency)

		case "summary":
			if !requireLogin(out, sess) {
				continue
			}
			renderSummary(out, sess, opts.currency)

		case "transfer":
			if len(fields) != 3 {
				fmt.Fprintln(out, "usage: transfer <username> <amount>")
				continue
			}
			amount, err := decimal.NewFromString(fields[2])
			if err != nil {
				fmt.Fprintln(out, "amount must be a number")
				continue
			}
			if err := ops.Transfer(sess, fields[1], amount); err != nil {
				fmt.Fprintf(out, "transfer failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Transferred %s%s to %s\n", amount, opts.currency, fields[1])
			renderSummary(out, sess, opts.currency)
			audit(opts.auditRoot, sess.Current().Username(), "transfer", amount.Neg().String(), "to "+fields[1])

		case "loan":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: loan <amount>")
				continue
			}
			amount, err := decimal.NewFromString(fields[1])
			if err != nil {
				fmt.Fprintln(out, "amount must be a number")
				continue
			}
			if err := ops.RequestLoan(sess, amount); err != nil {
				fmt.Fprintf(out, "loan rejected: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Loan of %s%s granted\n", amount, opts.currency)
			renderSummary(out, sess, opts.currency)
			audit(opts.auditRoot, sess.Current().Username(), "loan", amount.String(), "")

		case "close":
			if len(fields) != 3 {
				fmt.Fprintln(out, "usage: close <username> <pin>")
				continue
			}
			pin, err := strconv.Atoi(fields[2])
			if err != nil {
				fmt.Fprintln(out, "pin must be a number")
				continue
			}
			var username string
			if sess.LoggedIn() {
				username = sess.Current().Username()
			}
			if err := ops.CloseAccount(sess, fields[1], pin); err != nil {
				fmt.Fprintf(out, "close failed: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Account closed.")
			audit(opts.auditRoot, username, "close", "", "")

		case "quit", "exit":
			return scanner.Err()

		default:
			fmt.Fprintf(out, "unknown command %q (try \"help\")\n", fields[0])
		}
	}
	return scanner.Err()
}

func requireLogin(out io.Writer, sess *session.Session) bool {
	if !sess.LoggedIn() {
		fmt.Fprintln(out, "log in first")
		return false
	}
	return true
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `Commands:
  login <username> <pin>     authenticate
  statement                  list movements
  sort                       toggle sorted statement view
  summary                    balance, in, out, interest
  transfer <username> <amt>  transfer to another account
  loan <amt>                 request a loan
  close <username> <pin>     close the account (confirm credentials)
  quit                       end the session
`)
}

// renderStatement prints the movement rows newest-first, numbered in
// chronological order, matching the original statement layout.
func renderStatement(out io.Writer, movements []decimal.Decimal, sorted bool, currency string) {
	view := summary.SortedView(movements, sorted)
	for i := len(view) - 1; i >= 0; i-- {
		kind := "deposit"
		if view[i].IsNegative() {
			kind = "withdrawal"
		}
		fmt.Fprintf(out, "%3d %-10s %12s%s\n", i+1, kind, view[i], currency)
	}
}

func renderSummary(out io.Writer, sess *session.Session, currency string) {
	acc := sess.Current()
	fmt.Fprintf(out, "Balance: %s%s\n", summary.Balance(acc), currency)
	fmt.Fprintf(out, "In: %s%s  Out: %s%s  Interest: %s%s\n",
		summary.Income(acc), currency,
		summary.Expense(acc), currency,
		summary.Interest(acc), currency)
}

// audit appends a trail entry; failures are reported but never interrupt the
// session.
func audit(root, username, action, amount, details string) {
	if root == "" {
		return
	}
	entry := auditlog.Entry{
		Timestamp: time.Now(),
		Username:  username,
		Action:    action,
		Amount:    amount,
		Details:   details,
	}
	if err := auditlog.Append(root, []auditlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
	}
}
