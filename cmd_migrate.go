package main

import (
	"github.com/appdotbuilder/futura-blog/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		logger.Info("Schema is up to date")
		return database.Close(db)
	},
}
