// Package main provides faqctl, offline maintenance for the FAQ store file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"backend-faq/internal/config"
	"backend-faq/internal/faqstore"
)

// cli carries state shared by subcommands once PersistentPreRunE has run.
type cli struct {
	storePath string
	cfg       *config.Config
	store     *faqstore.Manager
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "faqctl",
		Short: "Inspect and maintain the FAQ data file",
		Long: `faqctl works directly on the generated FAQ source file that the API
server reads and writes. The file path comes from FAQ_STORE_PATH (or .env)
unless --store is given.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.PersistentFlags().StringVar(&c.storePath, "store", "", "FAQ store file (default: FAQ_STORE_PATH)")

	root.AddCommand(
		c.initCmd(),
		c.listCmd(),
		c.validateCmd(),
		c.exportCmd(),
		c.tokenCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.storePath == "" {
		c.storePath = cfg.FAQStorePath
	}
	c.cfg = cfg
	c.store = faqstore.New(c.storePath)
	return nil
}
