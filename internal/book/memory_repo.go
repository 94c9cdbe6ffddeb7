package book

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogDoc struct {
	Books []Book `yaml:"books"`
}

// MemoryRepo serves a fixed list of books held in process memory.
type MemoryRepo struct {
	books []Book
}

func NewMemoryRepo(books []Book) *MemoryRepo {
	cp := make([]Book, len(books))
	copy(cp, books)
	return &MemoryRepo{books: cp}
}

// List returns a copy so callers cannot mutate the catalog.
func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	out := make([]Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

// Decode parses a YAML catalog document.
func Decode(rd io.Reader) ([]Book, error) {
	var doc catalogDoc
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Book{}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if doc.Books == nil {
		doc.Books = []Book{}
	}
	return doc.Books, nil
}

// Seed returns the built-in sample catalog.
func Seed() []Book {
	books, err := Decode(bytes.NewReader(embeddedCatalog))
	if err != nil {
		panic(err)
	}
	return books
}

// Load reads the catalog from path, or returns the built-in one when path is empty.
func Load(path string) ([]Book, error) {
	if path == "" {
		return Seed(), nil
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
