package transform

import (
	"fieldmap/internal/expr"
	"fieldmap/internal/mapping"
	"fieldmap/internal/record"
)

// conditional walks the chain rooted at the first condition: if, each
// else-if in order, then else. Further top-level conditions are ignored.
func (e *Engine) conditional(row record.Row, fm *mapping.FieldMapping) *string {
	root, ok := fm.RootCondition()
	if !ok {
		return fm.DefaultValue
	}

	if e.holds(row, fm, root.IfExpr) {
		return Resolve(row, root.Then)
	}

	for _, c := range root.ElseIfExprs {
		if e.holds(row, fm, c.IfExpr) {
			return Resolve(row, c.Then)
		}
	}

	if root.HasElse() {
		return Resolve(row, root.ElseExpr)
	}

	return fm.DefaultValue
}

// holds evaluates a predicate; malformed predicates are false.
func (e *Engine) holds(row record.Row, fm *mapping.FieldMapping, s string) bool {
	ok, err := expr.Evaluate(s, row)
	if err != nil {
		e.fieldLogger(fm).Warn().Err(err).Str("expr", s).Msg("cannot evaluate condition, treating as false")
		return false
	}

	return ok
}

// Resolve turns a result token into a value. A token naming a row field
// resolves to that field's string form ("" when null); any other token
// is a literal.
func Resolve(row record.Row, token string) *string {
	if row.Has(token) {
		s := row.String(token)
		return &s
	}

	return &token
}
