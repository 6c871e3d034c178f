package mapping

import (
	"io/fs"
	"sync"
)

// Registry memoizes loaded documents per path so a job can look up
// mappings per record without reparsing. Failed loads are not cached.
// It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	load func(path string) ([]*MappingDocument, error)
	docs map[string][]*MappingDocument
}

// NewRegistry returns a Registry reading from the local filesystem.
func NewRegistry() *Registry {
	return &Registry{
		load: LoadDocuments,
		docs: make(map[string][]*MappingDocument),
	}
}

// NewFSRegistry returns a Registry reading from fsys.
func NewFSRegistry(fsys fs.FS) *Registry {
	return &Registry{
		load: func(name string) ([]*MappingDocument, error) { return LoadFS(fsys, name) },
		docs: make(map[string][]*MappingDocument),
	}
}

// Documents returns the documents at path, loading them on first use.
func (r *Registry) Documents(path string) ([]*MappingDocument, error) {
	r.mu.RLock()
	docs, ok := r.docs[path]
	r.mu.RUnlock()

	if ok {
		return docs, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if docs, ok := r.docs[path]; ok {
		return docs, nil
	}

	docs, err := r.load(path)
	if err != nil {
		return nil, err
	}

	r.docs[path] = docs

	return docs, nil
}

// Mapping returns the document for transactionType at path.
func (r *Registry) Mapping(path, transactionType string) (*MappingDocument, error) {
	docs, err := r.Documents(path)
	if err != nil {
		return nil, err
	}

	return FindMapping(docs, transactionType)
}

// Invalidate drops the cached documents for path.
func (r *Registry) Invalidate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.docs, path)
}

// Reset drops every cached path.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.docs)
}
