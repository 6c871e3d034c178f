package mapping

import (
	"slices"
	"strings"
	"unicode/utf8"

	"fieldmap/internal/common"
)

// MappingDocument describes the output record of one transaction type for
// one source system. It is immutable after load.
type MappingDocument struct {
	// SourceSystem names the upstream system the rows come from.
	SourceSystem string `yaml:"sourceSystem,omitempty"`

	// JobName names the batch job the document belongs to.
	JobName string `yaml:"jobName,omitempty"`

	// TransactionType is the lookup key (case-sensitive).
	TransactionType string `yaml:"transactionType"`

	// Description is an optional human-readable description.
	Description string `yaml:"description,omitempty"`

	// Fields are the output fields in declaration order.
	Fields []FieldMapping `yaml:"fields"`
}

// OrderedFields returns a copy of Fields sorted by TargetPosition.
// Fields sharing a position keep their declaration order.
func (d *MappingDocument) OrderedFields() []FieldMapping {
	out := slices.Clone(d.Fields)
	slices.SortStableFunc(out, func(a, b FieldMapping) int {
		return a.TargetPosition - b.TargetPosition
	})

	return out
}

// RecordLength is the sum of all declared field lengths.
func (d *MappingDocument) RecordLength() int {
	total := 0
	for i := range d.Fields {
		total += max(d.Fields[i].Length, 0)
	}

	return total
}

// FieldMapping defines how one output field is computed and formatted.
type FieldMapping struct {
	// FieldName identifies the field in logs and diagnostics.
	FieldName string `yaml:"fieldName"`

	// TargetField is the name of the field in the output layout.
	// Defaults to FieldName.
	TargetField string `yaml:"targetField,omitempty"`

	// TargetPosition is the 1-based position of the field in the record.
	TargetPosition int `yaml:"targetPosition"`

	// Length is the fixed output width. Zero means "pass through unpadded".
	Length int `yaml:"length"`

	// DataType is advisory only; evaluation is string based.
	DataType string `yaml:"dataType,omitempty"`

	// TransformationType is kept verbatim so unknown kinds can be reported.
	// Use Kind for dispatch.
	TransformationType string `yaml:"transformationType"`

	// SourceField is the row field read by "source" mappings.
	SourceField string `yaml:"sourceField,omitempty"`

	// Value is the literal emitted by "constant" mappings.
	Value *string `yaml:"value,omitempty"`

	// DefaultValue is the fallback for every transformation type.
	DefaultValue *string `yaml:"defaultValue,omitempty"`

	// Conditions holds the condition chain of "conditional" mappings.
	// Only the first entry is evaluated.
	Conditions []Condition `yaml:"conditions,omitempty"`

	// Sources are the row fields combined by "composite" mappings.
	Sources StringOrArray `yaml:"sources,omitempty"`

	// Transform is the composite combinator (concat, sum, average, ...).
	Transform Combinator `yaml:"transform,omitempty"`

	// Delimiter joins composite values under the concat combinator.
	Delimiter string `yaml:"delimiter,omitempty"`

	// Pad is the pad direction: left (right-align), right (left-align) or none.
	Pad PadDirection `yaml:"pad,omitempty"`

	// PadChar is the pad character. Defaults to a space.
	PadChar string `yaml:"padChar,omitempty"`
}

// Kind returns the parsed transformation kind.
func (fm *FieldMapping) Kind() Kind {
	return ParseKind(fm.TransformationType)
}

// PadRune returns the first character of PadChar, or a space when unset.
func (fm *FieldMapping) PadRune() rune {
	if fm.PadChar == "" {
		return DefaultPadRune
	}

	r, _ := utf8.DecodeRuneInString(fm.PadChar)

	return r
}

// RootCondition returns the first condition, which is the only one evaluated.
func (fm *FieldMapping) RootCondition() (Condition, bool) {
	return common.First(fm.Conditions)
}

// DefaultPadRune is used when a field declares no pad character.
const DefaultPadRune = ' '

// MaxFieldLength bounds the declared width of a single field.
const MaxFieldLength = 1 << 16

// Condition is one link of an if / else-if / else chain.
type Condition struct {
	// IfExpr is the predicate, see package expr for the grammar.
	IfExpr string `yaml:"ifExpr"`

	// Then is the result token when IfExpr holds.
	Then string `yaml:"then"`

	// ElseIfExprs are tried in order when IfExpr does not hold. Only their
	// IfExpr and Then are used.
	ElseIfExprs []Condition `yaml:"elseIfExprs,omitempty"`

	// ElseExpr is the result token when nothing matched; blank means none.
	ElseExpr string `yaml:"elseExpr,omitempty"`
}

// HasElse returns true if the chain ends in a non-blank else token.
func (c Condition) HasElse() bool {
	return !common.IsBlank(c.ElseExpr)
}

// PadDirection selects how short values are filled.
type PadDirection string

const (
	// PadNone declares no alignment. Short values are still filled on the
	// right and long values truncated, so the width always matches Length.
	PadNone PadDirection = ""
	// PadLeft fills on the left, right-aligning the value.
	PadLeft PadDirection = "left"
	// PadRight fills on the right, left-aligning the value.
	PadRight PadDirection = "right"
)

// IsValid returns true if the direction is recognized.
func (p PadDirection) IsValid() bool {
	return p == PadNone || p == PadLeft || p == PadRight
}

// Combinator names how a composite mapping combines its sources.
type Combinator string

const (
	CombineConcat  Combinator = "concat"
	CombineSum     Combinator = "sum"
	CombineAverage Combinator = "average"
	CombineAvg     Combinator = "avg"
	CombineMin     Combinator = "min"
	CombineMax     Combinator = "max"
	CombineCount   Combinator = "count"
)

var combinators = []Combinator{
	CombineConcat, CombineSum, CombineAverage, CombineAvg, CombineMin, CombineMax, CombineCount,
}

// Normalize lower-cases the combinator and maps the empty value to concat.
func (c Combinator) Normalize() Combinator {
	n := Combinator(strings.ToLower(strings.TrimSpace(string(c))))
	if n == "" {
		return CombineConcat
	}

	return n
}

// IsValid returns true if the normalized combinator is recognized.
func (c Combinator) IsValid() bool {
	return slices.Contains(combinators, c.Normalize())
}

// IsNumeric returns true for combinators whose result is a number.
func (c Combinator) IsNumeric() bool {
	n := c.Normalize()
	return n != CombineConcat && slices.Contains(combinators, n)
}

// CombinatorNames lists the recognized combinators.
func CombinatorNames() []string {
	out := make([]string, len(combinators))
	for i, c := range combinators {
		out[i] = string(c)
	}

	return out
}

// StringOrArray can be unmarshaled from either a string or a list of strings,
// so "sources: amount" and "sources: [a, b]" are both accepted.
type StringOrArray []string
