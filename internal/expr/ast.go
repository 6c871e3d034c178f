package expr

import (
	"fmt"
	"strconv"
	"strings"

	"fieldmap/internal/record"
)

// Expr is a parsed predicate.
type Expr interface {
	// Eval reports whether the predicate holds for row.
	Eval(row record.Row) bool
	String() string
}

// NullCheck holds when Field is absent from the row or null.
type NullCheck struct {
	Field string
}

func (e NullCheck) Eval(row record.Row) bool {
	return row.IsNull(e.Field)
}

func (e NullCheck) String() string {
	return e.Field + " == null"
}

// NotNullCheck holds when Field is present and non-null.
type NotNullCheck struct {
	Field string
}

func (e NotNullCheck) Eval(row record.Row) bool {
	return !row.IsNull(e.Field)
}

func (e NotNullCheck) String() string {
	return e.Field + " != null"
}

// StringEq holds when the stringified field equals Literal exactly.
// A null field compares as "".
type StringEq struct {
	Field   string
	Literal string
}

func (e StringEq) Eval(row record.Row) bool {
	return row.String(e.Field) == e.Literal
}

func (e StringEq) String() string {
	return fmt.Sprintf("%s = '%s'", e.Field, e.Literal)
}

//go:generate go tool stringer -type=Op -linecomment -output=op_string.go

// Op is a numeric comparison operator. String returns its symbol.
type Op int

const (
	OpGE Op = iota // >=
	OpLE           // <=
	OpGT           // >
	OpLT           // <
	OpEQ           // =
)

// Compare applies the operator to a and b. OpEQ is exact float64
// equality; configured documents rely on it, so no epsilon is applied.
func (o Op) Compare(a, b float64) bool {
	switch o {
	case OpGE:
		return a >= b
	case OpLE:
		return a <= b
	case OpGT:
		return a > b
	case OpLT:
		return a < b
	case OpEQ:
		return a == b
	default:
		return false
	}
}

// NumericCmp compares the field, parsed as float64, against Operand.
// A null or unparsable field never matches.
type NumericCmp struct {
	Field   string
	Op      Op
	Operand float64
}

func (e NumericCmp) Eval(row record.Row) bool {
	if row.IsNull(e.Field) {
		return false
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(row.String(e.Field)), 64)
	if err != nil {
		return false
	}

	return e.Op.Compare(v, e.Operand)
}

func (e NumericCmp) String() string {
	return fmt.Sprintf("%s %s %s", e.Field, e.Op, strconv.FormatFloat(e.Operand, 'f', -1, 64))
}
