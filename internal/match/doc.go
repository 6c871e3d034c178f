// Package match provides the fuzzy name matching behind "did you mean"
// hints: identifier normalization, Levenshtein distance and candidate
// ranking. It is used for lookup misses (transaction types) and for
// unrecognized transformation kinds in mapping documents.
package match
