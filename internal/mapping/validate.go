package mapping

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fieldmap/internal/common"
	"fieldmap/internal/diagnostic"
	"fieldmap/internal/match"
)

// Validate checks a document's structure. Errors make the document
// unusable; warnings describe fields that will fall back to their default
// value at run time.
func Validate(doc *MappingDocument) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if doc == nil {
		res.AddError("document_is_nil", "mapping document is nil", "", "")
		return res
	}

	docName := doc.TransactionType
	if common.IsBlank(docName) {
		res.AddError("missing_transaction_type", "mapping document must specify transactionType", "", "")
	}

	positions := map[int]string{}

	for i := range doc.Fields {
		fm := &doc.Fields[i]

		name := fm.FieldName
		if common.IsBlank(name) {
			name = fmt.Sprintf("fields[%d]", i)
			res.AddError("missing_field_name", "field mapping must specify fieldName", docName, name)
		}

		validateLayout(res, docName, name, fm, positions)
		validateTransformation(res, docName, name, fm)
	}

	return res
}

// validateLayout checks position, length and padding attributes.
func validateLayout(res *diagnostic.Diagnostics, docName, name string, fm *FieldMapping, positions map[int]string) {
	if fm.TargetPosition < 1 {
		res.AddError("invalid_position",
			fmt.Sprintf("targetPosition must be >= 1, got %d", fm.TargetPosition), docName, name)
	} else if other, ok := positions[fm.TargetPosition]; ok {
		res.AddError("duplicate_position",
			fmt.Sprintf("targetPosition %d is already used by %s", fm.TargetPosition, other), docName, name)
	} else {
		positions[fm.TargetPosition] = name
	}

	if fm.Length < 0 {
		res.AddError("negative_length", fmt.Sprintf("length must be >= 0, got %d", fm.Length), docName, name)
	} else if fm.Length > MaxFieldLength {
		res.AddError("length_too_large",
			fmt.Sprintf("length must be <= %d, got %d", MaxFieldLength, fm.Length), docName, name)
	}

	if !fm.Pad.IsValid() {
		res.AddError("invalid_pad",
			fmt.Sprintf("pad must be left, right or none, got %q", string(fm.Pad)), docName, name)
	}

	if utf8.RuneCountInString(fm.PadChar) > 1 {
		res.AddWarning("long_pad_char",
			fmt.Sprintf("padChar %q has more than one character; only %q is used", fm.PadChar, fm.PadRune()),
			docName, name)
	}
}

// validateTransformation checks the attributes each transformation type relies on.
func validateTransformation(res *diagnostic.Diagnostics, docName, name string, fm *FieldMapping) {
	switch fm.Kind() {
	case KindSource:
		if common.IsBlank(fm.SourceField) {
			res.AddWarning("missing_source_field", "source mapping has no sourceField; defaultValue is used", docName, name)
		}

	case KindConstant:
		if fm.Value == nil && fm.DefaultValue == nil {
			res.AddWarning("missing_value", "constant mapping has neither value nor defaultValue", docName, name)
		}

	case KindConditional:
		root, ok := fm.RootCondition()
		if !ok {
			res.AddWarning("missing_conditions", "conditional mapping has no conditions; defaultValue is used", docName, name)
			break
		}

		if len(fm.Conditions) > 1 {
			res.AddInfo("extra_conditions",
				fmt.Sprintf("only the first of %d conditions is evaluated", len(fm.Conditions)), docName, name)
		}

		if common.IsBlank(root.IfExpr) {
			res.AddWarning("missing_if_expr", "first condition has no ifExpr", docName, name)
		}

	case KindComposite:
		if len(fm.Sources) == 0 {
			res.AddWarning("missing_sources", "composite mapping has no sources; defaultValue is used", docName, name)
		}

		if !fm.Transform.IsValid() {
			d := res.AddWarning("unknown_combinator",
				fmt.Sprintf("unknown composite transform %q; defaultValue is used", string(fm.Transform)), docName, name)
			if hint, ok := match.Suggest(string(fm.Transform), CombinatorNames()); ok {
				d.Suggestion = hint
			}
		}

	default:
		d := res.AddWarning("unknown_transformation_type",
			fmt.Sprintf("unknown transformationType %q; defaultValue is used", fm.TransformationType), docName, name)
		if hint, ok := match.Suggest(strings.ToLower(fm.TransformationType), KindNames()); ok {
			d.Suggestion = hint
		}
	}
}
