// Package expr parses and evaluates the boolean predicates used in
// conditional field mappings.
//
// The grammar is deliberately small. Four shapes are recognized, tried
// in this order against the trimmed expression:
//
//	<field> == null          NullCheck
//	<field> != null          NotNullCheck
//	ident = 'literal'        StringEq
//	ident OP number          NumericCmp (OP is one of >= <= > < =)
//
// ident is a run of ASCII letters, digits and underscores; number is an
// optional minus sign, digits, and an optional fraction. Anything else
// is rejected by Parse and evaluates to false.
package expr
