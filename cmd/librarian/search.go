package main

import (
	"errors"

	"github.com/spf13/cobra"

	"librarycatalog/internal/book"
	"librarycatalog/internal/catalog"
	"librarycatalog/internal/view"
)

// facade answers immediately unless the command asked to feel like the web page.
func (a *app) facade(simulateDelay bool) *catalog.Service {
	delay := catalog.WithDelay(0)
	if simulateDelay {
		delay = catalog.WithDelay(a.cfg.FacadeDelay)
	}
	return catalog.NewService(book.NewMemoryRepo(a.books), delay, catalog.WithLogger(a.log))
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		delay bool
		by    string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles, authors and genres (case-sensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errors.New(view.AlertQueryMissing)
			}
			field, err := book.ParseField(by)
			if err != nil {
				return err
			}

			books, err := a.facade(delay).SearchBooksBy(cmd.Context(), field, args[0])
			if err != nil {
				return err
			}
			return view.WriteText(cmd.OutOrStdout(), books)
		},
	}
	cmd.Flags().BoolVar(&delay, "simulate-delay", false, "wait FACADE_DELAY before answering, like the web page")
	cmd.Flags().StringVar(&by, "by", "any", "field to search: any, title, author or genre")
	return cmd
}

func newBooksCmd(a *app) *cobra.Command {
	var delay bool

	cmd := &cobra.Command{
		Use:   "books",
		Short: "List the whole catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := a.facade(delay).ListBooks(cmd.Context())
			if err != nil {
				return err
			}
			return view.WriteText(cmd.OutOrStdout(), books)
		},
	}
	cmd.Flags().BoolVar(&delay, "simulate-delay", false, "wait FACADE_DELAY before answering, like the web page")
	return cmd
}
