package transform

import (
	"strings"

	"fieldmap/internal/mapping"
	"fieldmap/internal/record"
)

// FieldValue is one formatted field of an output record.
type FieldValue struct {
	Name        string
	TargetField string
	Position    int
	Length      int
	Value       string
}

// TransformRecord evaluates every field of doc against row, in target
// position order.
func (e *Engine) TransformRecord(row record.Row, doc *mapping.MappingDocument) []FieldValue {
	fields := doc.OrderedFields()
	out := make([]FieldValue, 0, len(fields))

	for i := range fields {
		fm := &fields[i]
		out = append(out, FieldValue{
			Name:        fm.FieldName,
			TargetField: fm.TargetField,
			Position:    fm.TargetPosition,
			Length:      fm.Length,
			Value:       e.TransformField(row, fm),
		})
	}

	return out
}

// Render assembles the fixed-width record for row.
func (e *Engine) Render(row record.Row, doc *mapping.MappingDocument) string {
	return Join(e.TransformRecord(row, doc))
}

// Join concatenates field values into one record line.
func Join(values []FieldValue) string {
	n := 0
	for _, fv := range values {
		n += len(fv.Value)
	}

	var b strings.Builder

	b.Grow(n)

	for _, fv := range values {
		b.WriteString(fv.Value)
	}

	return b.String()
}
