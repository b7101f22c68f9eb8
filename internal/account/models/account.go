package models

import (
	"contabanco/internal/account/validation"
	dErrors "contabanco/pkg/domain-errors"
)

// Account is a registered bank account.
//
// Invariants:
//   - number is within validation.MinAccountNumber..MaxAccountNumber
//   - branchCode is non-blank and stored trimmed
//   - holderName has at least two words and is stored trimmed and upper-cased
//   - balance is >= 0
//
// Fields are unexported; the only writers are NewAccount and the Set* methods,
// which run the same rules as the per-field prompts. An Account is never
// observable in a partially valid state.
type Account struct {
	number     int
	branchCode string
	holderName string
	balance    float64
}

// Snapshot is a read-only copy of an Account for display.
type Snapshot struct {
	AccountNumber int
	BranchCode    string
	HolderName    string
	Balance       float64
}

// NewAccount validates all four values and builds an Account only when every
// one of them passes. Nothing is constructed otherwise.
//
// Errors: returns CodeInvariantViolation wrapping the first rejected rule.
func NewAccount(number int, branchCode, holderName string, balance float64) (*Account, error) {
	if err := validation.AccountNumber(number); err != nil {
		return nil, invariant(FieldAccountNumber, err)
	}
	if err := validation.BranchCode(branchCode); err != nil {
		return nil, invariant(FieldBranchCode, err)
	}
	if err := validation.HolderName(holderName); err != nil {
		return nil, invariant(FieldHolderName, err)
	}
	if err := validation.Balance(balance); err != nil {
		return nil, invariant(FieldBalance, err)
	}
	return &Account{
		number:     number,
		branchCode: validation.NormalizeBranchCode(branchCode),
		holderName: validation.NormalizeHolderName(holderName),
		balance:    balance,
	}, nil
}

func (a *Account) Number() int        { return a.number }
func (a *Account) BranchCode() string { return a.branchCode }
func (a *Account) HolderName() string { return a.holderName }
func (a *Account) Balance() float64   { return a.balance }

// SetNumber replaces the account number if it passes validation.
func (a *Account) SetNumber(number int) error {
	if err := validation.AccountNumber(number); err != nil {
		return invariant(FieldAccountNumber, err)
	}
	a.number = number
	return nil
}

// SetBranchCode replaces the branch code if it passes validation.
func (a *Account) SetBranchCode(branchCode string) error {
	if err := validation.BranchCode(branchCode); err != nil {
		return invariant(FieldBranchCode, err)
	}
	a.branchCode = validation.NormalizeBranchCode(branchCode)
	return nil
}

// SetHolderName replaces the holder name if it passes validation.
func (a *Account) SetHolderName(holderName string) error {
	if err := validation.HolderName(holderName); err != nil {
		return invariant(FieldHolderName, err)
	}
	a.holderName = validation.NormalizeHolderName(holderName)
	return nil
}

// SetBalance replaces the balance if it passes validation.
func (a *Account) SetBalance(balance float64) error {
	if err := validation.Balance(balance); err != nil {
		return invariant(FieldBalance, err)
	}
	a.balance = balance
	return nil
}

// Snapshot copies the current field values.
func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		AccountNumber: a.number,
		BranchCode:    a.branchCode,
		HolderName:    a.holderName,
		Balance:       a.balance,
	}
}

func invariant(field Field, err error) error {
	return dErrors.Wrap(err, dErrors.CodeInvariantViolation, field.String()+" rejected")
}
