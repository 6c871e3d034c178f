package mapping

import (
	"errors"
	"fmt"
	"os"

	"fieldmap/internal/diagnostic"
)

// Report is the outcome of checking one document of a mapping source.
type Report struct {
	// Index is the 0-based ordinal of the document within the source.
	Index int
	// TransactionType is empty when the document could not be decoded.
	TransactionType string
	// Fields is the number of field mappings in the document.
	Fields int
	// Err holds a decode failure. Diagnostics is nil in that case.
	Err         error
	Diagnostics *diagnostic.Diagnostics
}

// OK returns true if the document decoded and has no validation errors.
func (r *Report) OK() bool {
	return r.Err == nil && (r.Diagnostics == nil || !r.Diagnostics.HasErrors())
}

// CheckDocuments decodes and validates every document in data without
// stopping at the first failure. Blank documents produce no report.
func CheckDocuments(data []byte) []Report {
	var reports []Report

	for i, chunk := range SplitDocuments(data) {
		if isBlankDocument(chunk) {
			continue
		}

		doc, err := decode([]byte(chunk))
		if errors.Is(err, errEmptyDocument) {
			continue
		}

		if err != nil {
			reports = append(reports, Report{Index: i, Err: err})
			continue
		}

		reports = append(reports, Report{
			Index:           i,
			TransactionType: doc.TransactionType,
			Fields:          len(doc.Fields),
			Diagnostics:     Validate(doc),
		})
	}

	return reports
}

// CheckFile is CheckDocuments over the file at path.
func CheckFile(path string) ([]Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}

	reports := CheckDocuments(data)
	if len(reports) == 0 {
		return nil, fmt.Errorf("%s: no mapping documents", path)
	}

	return reports, nil
}
