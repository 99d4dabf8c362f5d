package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/models"
)

func generateCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate typed query helpers for the models",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			return models.GenerateQueries(db, outPath)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "./generated", "output directory")
	return cmd
}

func columnReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "column-report",
		Short: "List database columns that no model field maps to",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			reports, err := models.ColumnReport(db)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), models.FormatColumnReport(reports))
			return nil
		},
	}
}
