// Package transform computes fixed-width output values from input rows.
//
// For every field mapping the Engine dispatches on the transformation
// kind, then passes the raw result through the formatting stage, which
// pads and truncates it to the declared length. Evaluation is pure: the
// same row and mapping always produce the same string, and nothing in
// the engine is shared between calls apart from the logger.
//
// Field-level problems (bad expressions, unknown kinds, misconfigured
// composites, even panics) never escape TransformField. They are logged
// as warnings and the field falls back to its formatted default value.
package transform
