package transform

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fieldmap/internal/common"
	"fieldmap/internal/mapping"
	"fieldmap/internal/record"
)

// Engine evaluates field mappings against rows. The zero value is not
// usable; construct one with New.
type Engine struct {
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger soft failures are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New returns an Engine that logs to the global zerolog logger unless
// WithLogger is given.
func New(opts ...Option) *Engine {
	e := &Engine{logger: log.Logger}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

var defaultEngine = New()

// TransformField evaluates fm against row with the default engine.
func TransformField(row record.Row, fm *mapping.FieldMapping) string {
	return defaultEngine.TransformField(row, fm)
}

// TransformField computes the formatted value of one field. It never
// fails: any problem degrades to the field's formatted default value, or
// to the raw default value when the field's width itself is unusable.
func (e *Engine) TransformField(row record.Row, fm *mapping.FieldMapping) (out string) {
	if fm == nil {
		e.logger.Warn().Msg("nil field mapping")
		return ""
	}

	if fm.Length > mapping.MaxFieldLength {
		e.fieldLogger(fm).Warn().
			Int("length", fm.Length).
			Msg("field length exceeds maximum, using unformatted default value")

		return rawDefault(fm)
	}

	defer func() {
		if r := recover(); r != nil {
			e.fieldLogger(fm).Warn().
				Str("panic", fmt.Sprint(r)).
				Msg("field formatting failed, using unformatted default value")

			out = rawDefault(fm)
		}
	}()

	return Format(e.value(row, fm), fm.Length, fm.Pad, fm.PadRune())
}

func rawDefault(fm *mapping.FieldMapping) string {
	if fm.DefaultValue == nil {
		return ""
	}

	return *fm.DefaultValue
}

// value is the recovered boundary around dispatch.
func (e *Engine) value(row record.Row, fm *mapping.FieldMapping) (out *string) {
	defer func() {
		if r := recover(); r != nil {
			e.fieldLogger(fm).Warn().
				Str("panic", fmt.Sprint(r)).
				Msg("field transformation failed, using default value")

			out = fm.DefaultValue
		}
	}()

	return e.dispatch(row, fm)
}

// dispatch computes the raw, unformatted value. nil means null.
func (e *Engine) dispatch(row record.Row, fm *mapping.FieldMapping) *string {
	switch fm.Kind() {
	case mapping.KindSource:
		return e.source(row, fm)
	case mapping.KindConstant:
		return constant(fm)
	case mapping.KindConditional:
		return e.conditional(row, fm)
	case mapping.KindComposite:
		return e.composite(row, fm)
	default:
		e.fieldLogger(fm).Warn().
			Str("transformationType", fm.TransformationType).
			Msg("unknown transformation type, using default value")

		return fm.DefaultValue
	}
}

func (e *Engine) source(row record.Row, fm *mapping.FieldMapping) *string {
	if common.IsBlank(fm.SourceField) {
		return fm.DefaultValue
	}

	if v := row.StringPtr(fm.SourceField); v != nil {
		return v
	}

	return fm.DefaultValue
}

func constant(fm *mapping.FieldMapping) *string {
	if fm.Value != nil {
		return fm.Value
	}

	return fm.DefaultValue
}

func (e *Engine) fieldLogger(fm *mapping.FieldMapping) *zerolog.Logger {
	l := e.logger.With().
		Str("field", fm.FieldName).
		Int("position", fm.TargetPosition).
		Logger()

	return &l
}
