package terminal

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"contabanco/internal/account/models"
	dErrors "contabanco/pkg/domain-errors"
)

// fieldPrompt describes how one field is asked for and how its raw line is
// turned into the value the registration expects.
type fieldPrompt struct {
	label string
	// hint is printed when the line cannot be parsed at all.
	hint  string
	parse func(line string) (any, error)
}

func prompts(currency string) map[models.Field]fieldPrompt {
	return map[models.Field]fieldPrompt{
		models.FieldAccountNumber: {
			label: "Account number: ",
			hint:  "Enter whole numbers only.",
			parse: func(line string) (any, error) { return parseAccountNumber(line) },
		},
		models.FieldBranchCode: {
			label: "Branch: ",
			parse: parseText,
		},
		models.FieldHolderName: {
			label: "Holder name: ",
			parse: parseText,
		},
		models.FieldBalance: {
			label: "Initial balance: " + currency + " ",
			hint:  "Enter a number using a dot or a comma as decimal separator.",
			parse: func(line string) (any, error) { return parseBalance(line) },
		},
	}
}

func parseText(line string) (any, error) {
	return strings.TrimSpace(line), nil
}

func parseAccountNumber(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeBadRequest, "account number must be an integer")
	}
	return n, nil
}

// parseBalance accepts "1500.50" and "1500,50". Thousands separators are not
// supported, and neither are values too large for a float64.
func parseBalance(line string) (float64, error) {
	s := strings.TrimSpace(line)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeBadRequest, "balance must be a number")
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) {
		return 0, dErrors.New(dErrors.CodeBadRequest, "balance is out of range")
	}
	return f, nil
}
