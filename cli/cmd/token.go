package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"stratagix/pkg/auth"
	"stratagix/pkg/config"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		userID string
		email  string
		role   string
		secret string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development session token for the planner and social APIs",
		Long: `Mint an HS256 session token signed with the identity provider's JWT secret.
The secret is read from --secret or $SUPABASE_JWT_SECRET.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = config.GetEnv("SUPABASE_JWT_SECRET", "")
			}
			if secret == "" {
				return fmt.Errorf("no signing secret: pass --secret or set SUPABASE_JWT_SECRET")
			}
			if userID == "" {
				userID = uuid.NewString()
			}
			token, err := auth.GenerateJWT(userID, email, role, []byte(secret), ttl)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput() {
				return writeJSON(out, map[string]any{
					"user_id":    userID,
					"token":      token,
					"expires_in": int(ttl.Seconds()),
				})
			}
			fmt.Fprintln(out, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id for the sub claim (default: random UUID)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringVar(&role, "role", auth.DefaultRole, "role claim")
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
