// Package record defines the input row consumed by the transformation
// engine and the rules for turning its untyped values into strings.
//
// A Row maps a field name to a scalar (string, number, bool) or nil.
// Absent keys and nil values are both "null" to the engine; the only
// place the two differ is token resolution, where an exact key match
// wins over treating the token as a literal.
package record
