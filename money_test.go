package cashflow

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		in   Money
		want string
	}{
		{in: M(1234, "USD"), want: "$1,234.00"},
		{in: M(-80, "USD"), want: "-$80.00"},
		{in: M(0, "USD"), want: "$0.00"},
		{in: M(19.99, "USD"), want: "$19.99"},
		{in: M(1234.5, "EUR"), want: "€1,234.50"},
	}
	for _, tc := range testCases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String(%v %s) = %q, want %q", tc.in.AsFloat(), tc.in.Currency(), got, tc.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	income := M(2000, "USD")
	expense := M(-80, "USD")

	if got := income.Add(expense); !got.Equal(M(1920, "USD")) {
		t.Errorf("2000 + (-80) = %v, want 1920", got)
	}
	if got := expense.Neg(); !got.Equal(M(80, "USD")) {
		t.Errorf("Neg(-80) = %v, want 80", got)
	}
	if got := expense.Abs(); !got.Equal(M(80, "USD")) {
		t.Errorf("Abs(-80) = %v, want 80", got)
	}
	if !expense.IsNegative() || income.IsNegative() {
		t.Error("sign predicates inconsistent")
	}
	// The zero Money has a weak currency that adopts the other operand's.
	if got := (Money{}).Add(income); got.Currency() != "USD" {
		t.Errorf("weak currency not adopted: %q", got.Currency())
	}
}
