// Package view maps catalog data and session state to what the page shows.
// Everything except Renderer is a pure function of its inputs.
package view

import (
	"fmt"

	"librarycatalog/internal/book"
	"librarycatalog/internal/session"
)

const (
	NoBooksFound      = "No books found"
	AlertEmailMissing = "Please enter email"
	AlertQueryMissing = "Please enter search term"

	LabelBorrow      = "Borrow"
	LabelUnavailable = "Unavailable"
)

// State is the visible section state.
type State struct {
	LoggedIn  bool
	ShowLogin bool
	ShowMain  bool
	Status    string
}

// StateFor derives the section state from the current session, or nil when
// nobody is logged in.
func StateFor(s *session.Session) State {
	if s == nil {
		return State{ShowLogin: true}
	}
	return State{
		LoggedIn: true,
		ShowMain: true,
		Status:   fmt.Sprintf("Logged in as: %s", s.Email),
	}
}

// Row is one rendered search result.
type Row struct {
	Title       string
	Author      string
	Genre       string
	ISBN        string
	Year        int
	Available   bool
	ActionLabel string
}

func ActionLabel(available bool) string {
	if available {
		return LabelBorrow
	}
	return LabelUnavailable
}

func RowsFor(books []book.Book) []Row {
	rows := make([]Row, 0, len(books))
	for _, b := range books {
		rows = append(rows, Row{
			Title:       b.Title,
			Author:      b.Author,
			Genre:       b.Genre,
			ISBN:        b.ISBN,
			Year:        b.Year,
			Available:   b.Available,
			ActionLabel: ActionLabel(b.Available),
		})
	}
	return rows
}

// Results is the content of the results container after a search.
type Results struct {
	Query string
	Rows  []Row
}

func ResultsFor(query string, books []book.Book) *Results {
	return &Results{Query: query, Rows: RowsFor(books)}
}

func (r *Results) Empty() bool { return len(r.Rows) == 0 }

// Page is everything the full document template needs. A nil Results leaves
// the container empty, as before the first search.
type Page struct {
	State
	Title   string
	Email   string
	Query   string
	Alert   string
	Results *Results
}

// NewPage builds a page for the given session.
func NewPage(s *session.Session) Page {
	return Page{State: StateFor(s), Title: "Library Catalog"}
}
