package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"fieldmap/internal/match"
)

// DocumentSeparator is the line that separates documents in a mapping source.
const DocumentSeparator = "---"

// LoadDocuments loads and parses every mapping document at path.
func LoadDocuments(path string) ([]*MappingDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, readError(path, err)
	}

	docs, err := ParseDocuments(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().Str("path", path).Int("documents", len(docs)).Msg("mapping documents loaded")

	return docs, nil
}

// LoadFS is LoadDocuments over an fs.FS.
func LoadFS(fsys fs.FS, name string) ([]*MappingDocument, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, readError(name, err)
	}

	docs, err := ParseDocuments(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return docs, nil
}

func readError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrResourceNotFound, path)
	}

	return fmt.Errorf("failed to read mapping file %s: %w", path, err)
}

// GetMapping loads all documents at path and returns the first one whose
// transaction type equals transactionType.
func GetMapping(path, transactionType string) (*MappingDocument, error) {
	docs, err := LoadDocuments(path)
	if err != nil {
		return nil, err
	}

	return FindMapping(docs, transactionType)
}

// FindMapping returns the first document with the given transaction type.
// The comparison is exact and case-sensitive.
func FindMapping(docs []*MappingDocument, transactionType string) (*MappingDocument, error) {
	for _, doc := range docs {
		if doc.TransactionType == transactionType {
			return doc, nil
		}
	}

	known := make([]string, 0, len(docs))
	for _, doc := range docs {
		known = append(known, doc.TransactionType)
	}

	if hint, ok := match.Suggest(transactionType, known); ok {
		return nil, fmt.Errorf("%w: transaction type %q (did you mean %q?)", ErrMappingNotFound, transactionType, hint)
	}

	return nil, fmt.Errorf("%w: transaction type %q", ErrMappingNotFound, transactionType)
}

// ParseDocuments splits data into documents and parses each one.
// The first failing document aborts the whole parse.
func ParseDocuments(data []byte) ([]*MappingDocument, error) {
	chunks := SplitDocuments(data)
	docs := make([]*MappingDocument, 0, len(chunks))

	for i, chunk := range chunks {
		if isBlankDocument(chunk) {
			continue
		}

		doc, err := Parse([]byte(chunk))
		if errors.Is(err, errEmptyDocument) {
			continue
		}

		if err != nil {
			return nil, &ParseError{Index: i, Err: err}
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// SplitDocuments splits data on lines consisting solely of "---".
// Trailing blanks and carriage returns on the separator line are ignored.
// Chunks are returned untrimmed and may be empty.
func SplitDocuments(data []byte) []string {
	lines := strings.Split(string(data), "\n")

	var (
		chunks  []string
		current []string
	)

	for _, line := range lines {
		if strings.TrimRight(line, " \t\r") == DocumentSeparator {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = current[:0]

			continue
		}

		current = append(current, line)
	}

	return append(chunks, strings.Join(current, "\n"))
}

// isBlankDocument returns true for chunks holding only blank or comment lines.
func isBlankDocument(chunk string) bool {
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return false
		}
	}

	return true
}

// errEmptyDocument is returned by Parse when the input has no content.
var errEmptyDocument = errors.New("empty document")

// Parse decodes and validates a single mapping document. Unknown
// attributes are rejected.
func Parse(data []byte) (*MappingDocument, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	diags := Validate(doc)
	for _, w := range diags.Warnings {
		log.Warn().Str("doc", w.Document).Str("field", w.Field).Str("code", w.Code).Msg(w.String())
	}

	if err := diags.Error(); err != nil {
		return nil, err
	}

	return doc, nil
}

// decode strictly decodes one document and applies defaults.
func decode(data []byte) (*MappingDocument, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc MappingDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyDocument
		}

		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&doc)

	return &doc, nil
}

// applyDefaults fills in default values for optional attributes.
func applyDefaults(doc *MappingDocument) {
	for i := range doc.Fields {
		f := &doc.Fields[i]
		if f.TargetField == "" {
			f.TargetField = f.FieldName
		}
	}
}

// MarshalDocuments serializes documents back into a "---" separated source.
func MarshalDocuments(docs []*MappingDocument) ([]byte, error) {
	var buf bytes.Buffer

	for i, doc := range docs {
		if i > 0 {
			buf.WriteString(DocumentSeparator + "\n")
		}

		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal mapping document %d: %w", i, err)
		}

		buf.Write(data)
	}

	return buf.Bytes(), nil
}
