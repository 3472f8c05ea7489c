package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		userID string
		secret string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				secret = os.Getenv("JWT_SECRET")
			}
			if secret == "" {
				return errors.New("signing secret is required: pass --secret or set JWT_SECRET")
			}
			if strings.TrimSpace(userID) == "" {
				return errors.New("--user is required")
			}
			token, err := auth.Issue([]byte(secret), userID, ttl, time.Now())
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id to put in the token subject")
	cmd.Flags().StringVar(&secret, "secret", "", "HS256 signing secret (default $JWT_SECRET)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
