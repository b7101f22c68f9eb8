package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contabanco/internal/account/validation"
	dErrors "contabanco/pkg/domain-errors"
)

func TestNewAccount(t *testing.T) {
	t.Run("valid values build an account with normalized fields", func(t *testing.T) {
		acct, err := NewAccount(12345, " 067-8 ", "arthur ribeiro", 1000.00)
		require.NoError(t, err)

		assert.Equal(t, Snapshot{
			AccountNumber: 12345,
			BranchCode:    "067-8",
			HolderName:    "ARTHUR RIBEIRO",
			Balance:       1000.00,
		}, acct.Snapshot())
	})

	t.Run("zero balance is allowed", func(t *testing.T) {
		acct, err := NewAccount(10000, "1", "Ana Souza", 0)
		require.NoError(t, err)
		assert.Zero(t, acct.Balance())
	})

	rejections := []struct {
		name    string
		number  int
		branch  string
		holder  string
		balance float64
		reason  string
	}{
		{"short account number", 500, "067-8", "Arthur Ribeiro", 10, validation.ReasonAccountNumberRange},
		{"blank branch", 12345, "   ", "Arthur Ribeiro", 10, validation.ReasonBranchCodeBlank},
		{"single-word holder", 12345, "067-8", "Arthur", 10, validation.ReasonHolderNameSingle},
		{"negative balance", 12345, "067-8", "Arthur Ribeiro", -0.01, validation.ReasonBalanceNegative},
	}
	for _, tt := range rejections {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			acct, err := NewAccount(tt.number, tt.branch, tt.holder, tt.balance)
			require.Error(t, err)
			assert.Nil(t, acct)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
			assert.Contains(t, err.Error(), tt.reason)
		})
	}

	t.Run("construction is deterministic", func(t *testing.T) {
		first, err := NewAccount(12345, "067-8", "Arthur Ribeiro", 1000.00)
		require.NoError(t, err)
		second, err := NewAccount(12345, "067-8", "Arthur Ribeiro", 1000.00)
		require.NoError(t, err)

		assert.Equal(t, first.Snapshot(), second.Snapshot())
		assert.NotSame(t, first, second)
	})
}

func TestAccountSetters(t *testing.T) {
	newAccount := func(t *testing.T) *Account {
		t.Helper()
		acct, err := NewAccount(12345, "067-8", "Arthur Ribeiro", 1000.00)
		require.NoError(t, err)
		return acct
	}

	t.Run("accepted values overwrite fields", func(t *testing.T) {
		acct := newAccount(t)

		require.NoError(t, acct.SetNumber(54321))
		require.NoError(t, acct.SetBranchCode(" 0001-2 "))
		require.NoError(t, acct.SetHolderName("maria da silva"))
		require.NoError(t, acct.SetBalance(0))

		assert.Equal(t, Snapshot{
			AccountNumber: 54321,
			BranchCode:    "0001-2",
			HolderName:    "MARIA DA SILVA",
			Balance:       0,
		}, acct.Snapshot())
	})

	t.Run("rejected values leave the account untouched", func(t *testing.T) {
		acct := newAccount(t)
		before := acct.Snapshot()

		assert.Error(t, acct.SetNumber(100000))
		assert.Error(t, acct.SetBranchCode(""))
		assert.Error(t, acct.SetHolderName("Arthur"))
		assert.Error(t, acct.SetBalance(-1))

		assert.Equal(t, before, acct.Snapshot())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		acct := newAccount(t)
		snap := acct.Snapshot()
		snap.HolderName = "SOMEONE ELSE"

		assert.Equal(t, "ARTHUR RIBEIRO", acct.HolderName())
	})
}

func TestField(t *testing.T) {
	t.Run("fields advance in prompt order", func(t *testing.T) {
		var seen []Field
		f := FieldAccountNumber
		for {
			seen = append(seen, f)
			next, ok := f.Next()
			if !ok {
				break
			}
			f = next
		}
		assert.Equal(t, Fields, seen)
	})

	t.Run("unknown fields are invalid", func(t *testing.T) {
		assert.False(t, Field(0).IsValid())
		assert.False(t, Field(99).IsValid())
		assert.Equal(t, "unknown", Field(0).String())
		_, ok := Field(0).Next()
		assert.False(t, ok)
	})
}
