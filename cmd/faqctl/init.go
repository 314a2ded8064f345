package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"backend-faq/internal/models"
)

func (c *cli) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the store with every catalog category and no FAQs",
		Long: `Init writes a store containing each category of the fixed catalog with
an empty FAQ list. An existing store is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := c.store.Init(models.EmptyCategories())
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, left unchanged\n", c.store.Path())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s with %d categories\n", c.store.Path(), len(models.CategoryCatalog))
			return nil
		},
	}
}
