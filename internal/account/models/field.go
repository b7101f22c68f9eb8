package models

// Field identifies one registration prompt. Fields are collected in
// declaration order.
type Field int

const (
	FieldAccountNumber Field = iota + 1
	FieldBranchCode
	FieldHolderName
	FieldBalance
)

// Fields lists every field in prompt order.
var Fields = []Field{FieldAccountNumber, FieldBranchCode, FieldHolderName, FieldBalance}

func (f Field) String() string {
	switch f {
	case FieldAccountNumber:
		return "account_number"
	case FieldBranchCode:
		return "branch_code"
	case FieldHolderName:
		return "holder_name"
	case FieldBalance:
		return "balance"
	default:
		return "unknown"
	}
}

// IsValid reports whether f is one of the declared fields.
func (f Field) IsValid() bool {
	return f >= FieldAccountNumber && f <= FieldBalance
}

// Next returns the field prompted after f and false when f is the last one.
func (f Field) Next() (Field, bool) {
	if !f.IsValid() || f == FieldBalance {
		return 0, false
	}
	return f + 1, true
}
