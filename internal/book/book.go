package book

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")

	ErrUnknownField = errors.New("unknown search field")
)

// Field names the part of a record a search looks at.
type Field string

const (
	FieldAny    Field = ""
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
	FieldGenre  Field = "genre"
)

// ParseField accepts "", "any", "title", "author" or "genre".
func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldAny, FieldTitle, FieldAuthor, FieldGenre:
		return f, nil
	case "any":
		return FieldAny, nil
	}
	return FieldAny, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Book represents a catalog record.
type Book struct {
	Title     string `json:"title" yaml:"title"`
	Author    string `json:"author" yaml:"author"`
	ISBN      string `json:"isbn" yaml:"isbn"`
	Genre     string `json:"genre" yaml:"genre"`
	Year      int    `json:"year" yaml:"year"`
	Available bool   `json:"available" yaml:"available"`
}

// Matches reports whether query is a case-sensitive substring of the
// title, author or genre.
func (b Book) Matches(query string) bool {
	return strings.Contains(b.Title, query) ||
		strings.Contains(b.Author, query) ||
		strings.Contains(b.Genre, query)
}

// MatchesField is Matches restricted to one field. FieldAny checks all three.
func (b Book) MatchesField(f Field, query string) bool {
	switch f {
	case FieldTitle:
		return strings.Contains(b.Title, query)
	case FieldAuthor:
		return strings.Contains(b.Author, query)
	case FieldGenre:
		return strings.Contains(b.Genre, query)
	}
	return b.Matches(query)
}

// Filter returns the books matching query, keeping their input order.
func Filter(books []Book, query string) []Book {
	return FilterBy(books, FieldAny, query)
}

// FilterBy is Filter over a single field.
func FilterBy(books []Book, f Field, query string) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if b.MatchesField(f, query) {
			out = append(out, b)
		}
	}
	return out
}

// FindByISBN returns the first book with the given ISBN.
func FindByISBN(books []Book, isbn string) (Book, error) {
	for _, b := range books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}
