package cashflow

import (
	"github.com/etnz/cashflow/date"
)

// Kind identifies the side of the cashflow a transaction falls on.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Transaction is one validated row of the input table.
type Transaction struct {
	Date        date.Date
	Description string
	Amount      Money
	Category    string
}

// Kind derives the transaction kind from the sign of its amount: a
// non-negative amount is income, a negative one an expense. The kind is never
// stored, so it cannot drift from the amount.
func (t Transaction) Kind() Kind {
	if t.Amount.IsNegative() {
		return Expense
	}
	return Income
}

// Month returns the month bucket for the transaction: the first day of the
// calendar month containing its date.
func (t Transaction) Month() date.Date { return t.Date.StartOfMonth() }

// Ledger is the validated, ordered transaction table for one run.
type Ledger struct {
	transactions []Transaction
	currency     string
}

// NewLedger returns a ledger holding the given transactions, in order, with
// amounts displayed in the given currency.
func NewLedger(currency string, transactions ...Transaction) *Ledger {
	return &Ledger{transactions: transactions, currency: currency}
}

// Transactions returns the rows in input order.
func (l *Ledger) Transactions() []Transaction { return l.transactions }

// Currency returns the display currency code of the ledger.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of rows.
func (l *Ledger) Len() int { return len(l.transactions) }
