// Package validation holds the field rules for account registration. Each rule
// is a pure function shared by the per-field prompt check and the Account
// constructor, so the two layers cannot drift apart.
package validation

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	dErrors "contabanco/pkg/domain-errors"
)

// Account numbers are fixed-width five digit identifiers.
const (
	MinAccountNumber = 10000
	MaxAccountNumber = 99999
)

// Rejection reasons. They are shown to the user verbatim.
const (
	ReasonAccountNumberRange = "account number must have exactly 5 digits"
	ReasonBranchCodeBlank    = "branch code cannot be blank"
	ReasonHolderNameBlank    = "holder name cannot be blank"
	ReasonHolderNameSingle   = "holder name must include at least a first and a last name"
	ReasonBalanceNegative    = "initial balance cannot be negative"
)

// AccountNumber accepts n iff MinAccountNumber <= n <= MaxAccountNumber.
func AccountNumber(n int) error {
	if n < MinAccountNumber || n > MaxAccountNumber {
		return dErrors.New(dErrors.CodeValidation, ReasonAccountNumberRange)
	}
	return nil
}

// BranchCode accepts any text that is not blank after trimming. The verifier
// digit shown on printed branch codes (e.g. 067-8) is not checked.
func BranchCode(s string) error {
	if strings.TrimSpace(s) == "" {
		return dErrors.New(dErrors.CodeValidation, ReasonBranchCodeBlank)
	}
	return nil
}

// HolderName accepts s iff, after trimming, it is non-empty and contains
// whitespace between two words.
func HolderName(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return dErrors.New(dErrors.CodeValidation, ReasonHolderNameBlank)
	}
	if strings.IndexFunc(trimmed, unicode.IsSpace) < 0 {
		return dErrors.New(dErrors.CodeValidation, ReasonHolderNameSingle)
	}
	return nil
}

// Balance accepts b iff b >= 0. NaN is rejected.
func Balance(b float64) error {
	if !(b >= 0) {
		return dErrors.New(dErrors.CodeValidation, ReasonBalanceNegative)
	}
	return nil
}

// NormalizeBranchCode returns the stored form of an accepted branch code.
func NormalizeBranchCode(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeHolderName returns the stored form of an accepted holder name:
// trimmed and upper-cased. A Caser is stateful, so one is built per call.
func NormalizeHolderName(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}
