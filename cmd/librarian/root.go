package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"librarycatalog/internal/book"
	"librarycatalog/internal/config"
	"librarycatalog/internal/logger"
)

// app is the state shared by every subcommand, built in PersistentPreRunE.
type app struct {
	cfg   config.Config
	log   *logrus.Logger
	books []book.Book
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "librarian",
		Short:         "Library catalog: login and search a static book list",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnvFiles()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			books, err := book.Load(cfg.CatalogFile)
			if err != nil {
				return err
			}
			a.cfg, a.log, a.books = cfg, log, books
			return nil
		},
	}

	root.AddCommand(newServeCmd(a), newSearchCmd(a), newBooksCmd(a))
	return root
}
