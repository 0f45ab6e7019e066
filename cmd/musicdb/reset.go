package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"musiccatalog/internal/database"
)

var schemaPath string

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop every catalog table and recreate the schema.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ddl := database.Schema()
		if schemaPath != "" {
			b, err := os.ReadFile(schemaPath)
			if err != nil {
				return fmt.Errorf("read schema: %w", err)
			}
			ddl = string(b)
		}

		db, logger, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Recreate(cmd.Context(), ddl); err != nil {
			return err
		}
		logger.Info().Msg("database schema recreated")
		return nil
	},
}

func init() {
	resetCmd.Flags().StringVar(&schemaPath, "schema", "", "DDL file to apply instead of the built-in schema")
	rootCmd.AddCommand(resetCmd)
}
