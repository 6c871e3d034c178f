package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"fieldmap/internal/common"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Document identifies the mapping document (transaction type), if any.
	Document string
	// Field identifies the field mapping, if any.
	Field string
	// Suggestion is an optional "did you mean" hint.
	Suggestion string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func (d *Diagnostics) add(sev Severity, code, message, document, field string) *Diagnostic {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Document: document,
		Field:    field,
	}

	switch sev {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
		return &d.Errors[len(d.Errors)-1]
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
		return &d.Warnings[len(d.Warnings)-1]
	default:
		d.Infos = append(d.Infos, diag)
		return &d.Infos[len(d.Infos)-1]
	}
}

// AddError adds an error diagnostic and returns it for further decoration.
func (d *Diagnostics) AddError(code, message, document, field string) *Diagnostic {
	return d.add(SeverityError, code, message, document, field)
}

// AddWarning adds a warning diagnostic and returns it for further decoration.
func (d *Diagnostics) AddWarning(code, message, document, field string) *Diagnostic {
	return d.add(SeverityWarning, code, message, document, field)
}

// AddInfo adds an info diagnostic and returns it for further decoration.
func (d *Diagnostics) AddInfo(code, message, document, field string) *Diagnostic {
	return d.add(SeverityInfo, code, message, document, field)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Document != "" {
		prefix = append(prefix, "["+d.Document+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", d.Suggestion)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
