package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/cobra"

	"backend-faq/internal/faqstore"
	"backend-faq/internal/models"
)

var errInvalidStore = errors.New("store failed validation")

func (c *cli) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the store parses and survives a rewrite unchanged",
		Long: `Validate parses the store, re-encodes it and parses the result again.
The two parses must agree. Duplicate FAQ ids and categories missing from
the catalog are reported as warnings; they do not fail validation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			raw, err := os.ReadFile(c.store.Path())
			if err != nil {
				return fmt.Errorf("read store: %w", err)
			}
			cats, err := faqstore.Decode(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", c.store.Path(), err)
			}

			encoded := faqstore.Encode(cats)
			again, err := faqstore.Decode(encoded)
			if err != nil {
				return fmt.Errorf("re-encoded store does not parse: %w", err)
			}
			if diff := cmp.Diff(cats, again, cmpopts.EquateEmpty()); diff != "" {
				fmt.Fprintf(out, "round trip changed the data (-stored +rewritten):\n%s", diff)
				return errInvalidStore
			}

			for _, w := range lint(cats) {
				fmt.Fprintln(out, "warning:", w)
			}
			if !bytes.Equal(raw, encoded) {
				fmt.Fprintln(out, "note: file is not in generated layout, the next write will reformat it")
			}

			total := 0
			for _, cat := range cats {
				total += len(cat.FAQs)
			}
			fmt.Fprintf(out, "ok: %d categories, %d FAQs\n", len(cats), total)
			return nil
		},
	}
}

func lint(cats []models.FAQCategory) []string {
	known := make(map[string]bool, len(models.CategoryCatalog))
	for _, opt := range models.CategoryCatalog {
		known[opt.Value] = true
	}

	var warnings []string
	seenCat := make(map[string]bool, len(cats))
	for _, cat := range cats {
		if seenCat[cat.ID] {
			warnings = append(warnings, fmt.Sprintf("category %q appears more than once", cat.ID))
		}
		seenCat[cat.ID] = true
		if !known[cat.ID] {
			warnings = append(warnings, fmt.Sprintf("category %q is not in the catalog", cat.ID))
		}

		seen := make(map[string]bool, len(cat.FAQs))
		for _, f := range cat.FAQs {
			if seen[f.ID] {
				warnings = append(warnings, fmt.Sprintf("duplicate FAQ id %s/%s", cat.ID, f.ID))
			}
			seen[f.ID] = true
		}
	}
	return warnings
}
