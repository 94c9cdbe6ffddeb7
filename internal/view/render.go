package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"text/tabwriter"

	"librarycatalog/internal/book"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page renders the whole document.
func (r *Renderer) Page(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "page.html", p)
}

// Results renders only the contents of the results container.
func (r *Renderer) Results(w io.Writer, res *Results) error {
	return r.tmpl.ExecuteTemplate(w, "results", res)
}

// Static returns the stylesheet and other assets, rooted at the static dir.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// WriteText prints books as an aligned table for terminals.
func WriteText(w io.Writer, books []book.Book) error {
	if len(books) == 0 {
		_, err := fmt.Fprintln(w, NoBooksFound)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tAUTHOR\tGENRE\tYEAR\tISBN\tACTION")
	for _, row := range RowsFor(books) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", row.Title, row.Author, row.Genre, row.Year, row.ISBN, row.ActionLabel)
	}
	return tw.Flush()
}
