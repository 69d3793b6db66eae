package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nfrund/profileview/internal/config"
	"github.com/nfrund/profileview/internal/stubbackend"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var stubTokenCmd = &cobra.Command{
	Use:   "stub-token",
	Short: "Print a development token accepted by the stub backend",
	Long: `Sign a token with STUB_JWT_SECRET. Set it as the auth_token cookie in the
browser, or pass it to "profileview show --token".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadStub()
		if err != nil {
			return err
		}
		token, err := stubbackend.IssueToken([]byte(cfg.JWTSecret), tokenSubject, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	stubTokenCmd.Flags().StringVar(&tokenSubject, "subject", "candidate", "Token subject")
	stubTokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime; negative values issue an expired token")
	rootCmd.AddCommand(stubTokenCmd)
}
