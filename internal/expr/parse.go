package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fieldmap/internal/record"
)

var (
	// ErrEmpty is returned for a blank expression.
	ErrEmpty = errors.New("empty expression")
	// ErrUnsupported is returned when an expression matches none of the known shapes.
	ErrUnsupported = errors.New("unsupported expression")
)

const (
	nullSuffix    = "== null"
	notNullSuffix = "!= null"
)

// Parse builds an Expr from s. Shapes are tried in a fixed order, so
// "a == null" is always a NullCheck and "a = '1'" is always a StringEq.
func Parse(s string) (Expr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}

	if strings.HasSuffix(s, nullSuffix) {
		return NullCheck{Field: strings.TrimSpace(strings.TrimSuffix(s, nullSuffix))}, nil
	}

	if strings.HasSuffix(s, notNullSuffix) {
		return NotNullCheck{Field: strings.TrimSpace(strings.TrimSuffix(s, notNullSuffix))}, nil
	}

	if e, ok := parseStringEq(s); ok {
		return e, nil
	}

	if e, ok := parseNumericCmp(s); ok {
		return e, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupported, s)
}

// Evaluate parses s and evaluates it against row. A parse failure
// yields false together with the error so callers can log it.
func Evaluate(s string, row record.Row) (bool, error) {
	e, err := Parse(s)
	if err != nil {
		return false, err
	}

	return e.Eval(row), nil
}

// parseStringEq matches: ident \s* = \s* ' ... ' with the closing quote
// as the final character. The literal may itself contain quotes.
func parseStringEq(s string) (StringEq, bool) {
	sc := scanner{src: s}

	field := sc.ident()
	if field == "" {
		return StringEq{}, false
	}

	sc.skipSpace()

	if !sc.consume("=") {
		return StringEq{}, false
	}

	sc.skipSpace()

	open := sc.pos
	if !sc.consume("'") {
		return StringEq{}, false
	}

	closing := len(s) - 1
	if closing <= open || s[closing] != '\'' {
		return StringEq{}, false
	}

	return StringEq{Field: field, Literal: s[open+1 : closing]}, true
}

// parseNumericCmp matches: ident \s* OP \s* -?digits(.digits)? at end of input.
func parseNumericCmp(s string) (NumericCmp, bool) {
	sc := scanner{src: s}

	field := sc.ident()
	if field == "" {
		return NumericCmp{}, false
	}

	sc.skipSpace()

	op, ok := sc.op()
	if !ok {
		return NumericCmp{}, false
	}

	sc.skipSpace()

	lit := sc.number()
	if lit == "" || !sc.done() {
		return NumericCmp{}, false
	}

	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return NumericCmp{}, false
	}

	return NumericCmp{Field: field, Op: op, Operand: v}, true
}

// scanner walks an expression byte by byte. All tokens are ASCII.
type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}

	return s.src[s.pos]
}

func (s *scanner) consume(tok string) bool {
	if strings.HasPrefix(s.src[s.pos:], tok) {
		s.pos += len(tok)
		return true
	}

	return false
}

func (s *scanner) skipSpace() {
	for !s.done() && isSpace(s.peek()) {
		s.pos++
	}
}

func (s *scanner) ident() string {
	start := s.pos
	for !s.done() && isWord(s.peek()) {
		s.pos++
	}

	return s.src[start:s.pos]
}

// op tries two-character operators before their one-character prefixes.
func (s *scanner) op() (Op, bool) {
	for _, op := range []Op{OpGE, OpLE, OpGT, OpLT, OpEQ} {
		if s.consume(op.String()) {
			return op, true
		}
	}

	return 0, false
}

func (s *scanner) number() string {
	start := s.pos

	s.consume("-")

	if s.digits() == 0 {
		s.pos = start
		return ""
	}

	mark := s.pos
	if s.consume(".") && s.digits() == 0 {
		s.pos = mark
	}

	return s.src[start:s.pos]
}

func (s *scanner) digits() int {
	n := 0
	for !s.done() && isDigit(s.peek()) {
		s.pos++
		n++
	}

	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWord(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
