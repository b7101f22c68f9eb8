package terminal

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"contabanco/internal/account/models"
)

const rule = "-----------------------------------------"

func writeReceipt(w io.Writer, snap models.Snapshot, currency string) error {
	_, err := fmt.Fprintf(w, `
%[1]s
ACCOUNT REGISTERED SUCCESSFULLY!
%[1]s
Hello, %[2]s!
Thank you for opening an account with us.

Account details:
Branch:   %[3]s
Account:  %[4]d
Balance:  %[5]s %[6]s

Your balance is already available for withdrawal.
%[1]s

Press [enter] to return to the menu.
`, rule, snap.HolderName, snap.BranchCode, snap.AccountNumber, currency,
		formatAmount(snap.Balance))
	return err
}

// formatAmount renders b with two decimals. decimal cannot represent NaN or
// infinities, so those fall back to strconv.
func formatAmount(b float64) string {
	if math.IsInf(b, 0) || math.IsNaN(b) {
		return strconv.FormatFloat(b, 'f', 2, 64)
	}
	return decimal.NewFromFloat(b).StringFixed(2)
}
