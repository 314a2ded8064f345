package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *cli) listCmd() *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List FAQs grouped by category",
		Long: `List prints every category with its FAQs in stored order.

With --flat it prints one row per FAQ, the same listing the admin
view of GET /faq-file?admin=true returns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if flat {
				faqs, err := c.store.ListAllFlat()
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "CATEGORY\tID\tQUESTION")
				for _, f := range faqs {
					fmt.Fprintf(w, "%s\t%s\t%s\n", f.Category, f.ID, f.Question)
				}
				return w.Flush()
			}

			cats, err := c.store.ReadAll()
			if err != nil {
				return err
			}
			for _, cat := range cats {
				fmt.Fprintf(out, "%s %s (%s) - %d FAQs\n", cat.Icon, cat.Title, cat.ID, len(cat.FAQs))
				for _, f := range cat.FAQs {
					fmt.Fprintf(out, "  - [%s] %s\n", f.ID, f.Question)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "one row per FAQ with its category")
	return cmd
}
