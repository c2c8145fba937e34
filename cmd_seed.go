package main

import (
	"github.com/appdotbuilder/futura-blog/database"

	"github.com/spf13/cobra"
)

var seedOpts = database.DefaultSeedOptions()

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty blog with demo content",
	Long: `Creates the default categories and tags, a few authors, and a mix of
published and draft posts. Running it again never duplicates content.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		return database.Seed(db, logger, seedOpts)
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedOpts.Authors, "authors", seedOpts.Authors, "number of authors to create")
	seedCmd.Flags().IntVar(&seedOpts.Published, "published", seedOpts.Published, "number of published posts")
	seedCmd.Flags().IntVar(&seedOpts.Drafts, "drafts", seedOpts.Drafts, "number of draft posts")
	seedCmd.Flags().Uint64Var(&seedOpts.Seed, "seed", seedOpts.Seed, "random seed, 0 for a random one")
}
