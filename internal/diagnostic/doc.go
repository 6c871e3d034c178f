// Package diagnostic provides structured errors, warnings and infos
// produced while validating mapping documents.
//
// Errors make a document unusable and fail the load; warnings describe
// configuration the engine tolerates at run time (it falls back to the
// field's default value) but that is almost certainly a mistake.
package diagnostic
