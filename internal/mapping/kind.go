package mapping

import "strings"

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the dispatch tag of a field mapping.
type Kind int

const (
	KindUnknown     Kind = iota // unknown
	KindSource                  // source
	KindConstant                // constant
	KindConditional             // conditional
	KindComposite               // composite
)

var kindsByName = map[string]Kind{
	KindSource.String():      KindSource,
	KindConstant.String():    KindConstant,
	KindConditional.String(): KindConditional,
	KindComposite.String():   KindComposite,
}

// ParseKind maps a transformationType value to a Kind, ignoring case and
// surrounding blanks. Unrecognized values map to KindUnknown.
func ParseKind(s string) Kind {
	if k, ok := kindsByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k
	}

	return KindUnknown
}

// KindNames lists the recognized transformation type names.
func KindNames() []string {
	return []string{
		KindSource.String(),
		KindConstant.String(),
		KindConditional.String(),
		KindComposite.String(),
	}
}
