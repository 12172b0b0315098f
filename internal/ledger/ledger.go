// Package ledger accumulates validated payment against a session's total.
// All amounts are integer cents; denomination checks stay exact that way.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrInvalidDenomination is returned for numeric amounts the machine
	// does not accept. The running total is left untouched.
	ErrInvalidDenomination = errors.New("ledger: amount is not an accepted denomination")
	// ErrNotNumeric is returned when an amount cannot be parsed at all.
	ErrNotNumeric = errors.New("ledger: amount is not numeric")
)

// Denominations lists the accepted coin and note values in cents,
// ascending.
var Denominations = []int64{10, 20, 50, 100, 200, 500, 1000, 2000}

// Ledger is the running payment total for one session. The zero value is
// ready to use.
type Ledger struct {
	total int64
}

// Add credits an accepted denomination to the running total. Any other
// amount returns ErrInvalidDenomination and mutates nothing.
func (l *Ledger) Add(cents int64) error {
	if !Accepted(cents) {
		return ErrInvalidDenomination
	}
	l.total += cents
	return nil
}

// Total returns the amount paid so far, in cents.
func (l *Ledger) Total() int64 {
	return l.total
}

// Reset clears the running total for the next session.
func (l *Ledger) Reset() {
	l.total = 0
}

// Accepted reports whether cents is one of the machine's denominations.
func Accepted(cents int64) bool {
	for _, d := range Denominations {
		if cents == d {
			return true
		}
	}
	return false
}

// ParseAmount converts operator input such as "5.0" or "0.10" to cents.
func ParseAmount(input string) (int64, error) {
	f, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, ErrNotNumeric
	}
	return int64(math.Round(f * 100)), nil
}

// FormatCents renders cents as a dollar string, e.g. 350 -> "$3.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
