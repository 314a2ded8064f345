package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"backend-faq/internal/config"
	"backend-faq/internal/helper"
)

func (c *cli) tokenCmd() *cobra.Command {
	var (
		userID int64
		name   string
		email  string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token signed with JWT_SECRET",
		Long: `Token signs a JWT the API server accepts, for scripting admin calls
without a users database. Keep the output secret.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				ttl = c.cfg.JWTTTL
			}
			issuer := config.NewTokenIssuer(c.cfg.JWTSecret, ttl)
			token, claims, err := issuer.GenerateToken(userID, name, email, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "role=%s expires=%s\n", claims.Role, claims.ExpiresAt.Time.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user-id", 0, "user id claim")
	cmd.Flags().StringVar(&name, "name", "faqctl", "name claim")
	cmd.Flags().StringVar(&email, "email", "", "email claim (required)")
	cmd.Flags().StringVar(&role, "role", helper.RoleAdmin, "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: JWT_TTL)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
