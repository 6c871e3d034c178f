package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldmap/internal/common"
	"fieldmap/internal/diagnostic"
)

func codes(diags []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	require.True(t, res.HasErrors())
	assert.Equal(t, []string{"document_is_nil"}, codes(res.Errors))
}

func TestValidateValid(t *testing.T) {
	doc := &MappingDocument{
		TransactionType: "ACH",
		Fields: []FieldMapping{
			{FieldName: "a", TargetPosition: 1, Length: 3, TransformationType: "constant", Value: common.Ptr("X")},
			{FieldName: "b", TargetPosition: 2, Length: 5, TransformationType: "source", SourceField: "b", Pad: PadLeft},
			{
				FieldName: "c", TargetPosition: 3, Length: 1, TransformationType: "conditional",
				Conditions: []Condition{{IfExpr: "x != null", Then: "Y"}},
			},
			{
				FieldName: "d", TargetPosition: 4, Length: 10, TransformationType: "composite",
				Sources: StringOrArray{"p", "q"}, Transform: "SUM", Pad: PadRight,
			},
		},
	}

	res := Validate(doc)
	assert.False(t, res.HasErrors(), res.Error())
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Infos)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      MappingDocument
		expected []string
	}{
		{
			name:     "missing transaction type",
			doc:      MappingDocument{},
			expected: []string{"missing_transaction_type"},
		},
		{
			name: "missing field name",
			doc: MappingDocument{TransactionType: "T", Fields: []FieldMapping{
				{TargetPosition: 1, TransformationType: "constant", Value: common.Ptr("x")},
			}},
			expected: []string{"missing_field_name"},
		},
		{
			name: "position below one",
			doc: MappingDocument{TransactionType: "T", Fields: []FieldMapping{
				{FieldName: "a", TargetPosition: 0, TransformationType: "constant", Value: common.Ptr("x")},
			}},
			expected: []string{"invalid_position"},
		},
		{
			name: "duplicate position",
			doc: MappingDocument{TransactionType: "T", Fields: []FieldMapping{
				{FieldName: "a", TargetPosition: 2, TransformationType: "constant", Value: common.Ptr("x")},
				{FieldName: "b", TargetPosition: 2, TransformationType: "constant", Value: common.Ptr("y")},
			}},
			expected: []string{"duplicate_position"},
		},
		{
			name: "negative length",
			doc: MappingDocument{TransactionType: "T", Fields: []FieldMapping{
				{FieldName: "a", TargetPosition: 1, Length: -1, TransformationType: "constant", Value: common.Ptr("x")},
			}},
			expected: []string{"negative_length"},
		},
		{
			name: "length above maximum",
			doc: MappingDocument{TransactionType: "T", Fields: []FieldMapping{
				{FieldName: "a", TargetPosition: 1, Length: MaxFieldLength + 1, TransformationType: "constant", Value: common.Ptr("x")},
			}},
			expected: []string{"length_too_large"},
		},
		{
			name: "invalid pad",
			doc: MappingDocument{TransactionType: "T", Fields: []FieldMapping{
				{FieldName: "a", TargetPosition: 1, Pad: "center", TransformationType: "constant", Value: common.Ptr("x")},
			}},
			expected: []string{"invalid_pad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(&tt.doc)
			require.True(t, res.HasErrors())
			assert.Equal(t, tt.expected, codes(res.Errors))
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	doc := &MappingDocument{
		TransactionType: "T",
		Fields: []FieldMapping{
			{FieldName: "src", TargetPosition: 1, TransformationType: "source"},
			{FieldName: "const", TargetPosition: 2, TransformationType: "constant"},
			{FieldName: "cond", TargetPosition: 3, TransformationType: "conditional"},
			{
				FieldName: "blankIf", TargetPosition: 4, TransformationType: "conditional",
				Conditions: []Condition{{Then: "x"}},
			},
			{FieldName: "comp", TargetPosition: 5, TransformationType: "composite"},
			{
				FieldName: "combo", TargetPosition: 6, TransformationType: "composite",
				Sources: StringOrArray{"a"}, Transform: "averge",
			},
			{FieldName: "typo", TargetPosition: 7, TransformationType: "conditonal"},
			{FieldName: "bogus", TargetPosition: 8, TransformationType: "bogus"},
			{
				FieldName: "wide", TargetPosition: 9, TransformationType: "constant",
				Value: common.Ptr("x"), PadChar: "ab",
			},
		},
	}

	res := Validate(doc)
	require.False(t, res.HasErrors(), res.Error())

	assert.Equal(t, []string{
		"missing_source_field",
		"missing_value",
		"missing_conditions",
		"missing_if_expr",
		"missing_sources",
		"unknown_combinator",
		"unknown_transformation_type",
		"unknown_transformation_type",
		"long_pad_char",
	}, codes(res.Warnings))

	assert.Equal(t, "average", res.Warnings[5].Suggestion)
	assert.Equal(t, "conditional", res.Warnings[6].Suggestion)
	assert.Empty(t, res.Warnings[7].Suggestion)
}

func TestValidateExtraConditionsInfo(t *testing.T) {
	doc := &MappingDocument{
		TransactionType: "T",
		Fields: []FieldMapping{{
			FieldName: "c", TargetPosition: 1, TransformationType: "conditional",
			Conditions: []Condition{
				{IfExpr: "a != null", Then: "A"},
				{IfExpr: "b != null", Then: "B"},
			},
		}},
	}

	res := Validate(doc)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Infos, 1)
	assert.Equal(t, "extra_conditions", res.Infos[0].Code)
}
