package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfrund/profileview/internal/config"
	"github.com/nfrund/profileview/internal/domain"
	"github.com/nfrund/profileview/internal/profile"
	"github.com/nfrund/profileview/internal/profileapi"
)

var (
	showToken  string
	showURL    string
	showStrict bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch a profile and print it as text",
	Long: `Fetch the profile belonging to a credential and print the same seven
groups the web view shows.

Examples:
  profileview show --token "$(profileview stub-token)"
  profileview show --token abc --url http://localhost:9090/api/profile`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := config.LoadClient()
	if showURL != "" {
		cfg.ProfileAPIURL = showURL
	}
	if cmd.Flags().Changed("strict") {
		cfg.StrictPresence = showStrict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if showToken == "" {
		showToken = os.Getenv("PROFILE_TOKEN")
	}
	if showToken == "" {
		return fmt.Errorf("%w: sign in at %s and pass --token", domain.ErrNoCredential, cfg.LoginURL)
	}

	client := profileapi.New(cfg.ProfileAPIURL, cfg.ProfileAPITimeout)
	rec, err := client.FetchProfile(cmd.Context(), showToken)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return errors.New(domain.MsgSessionExpired)
	case err != nil:
		return fmt.Errorf("%s: %w", domain.NotificationMessage(err), err)
	case rec == nil:
		return errors.New(domain.MsgProfileNotFound)
	}

	policy := profile.BlankFalsy
	if cfg.StrictPresence {
		policy = profile.BlankAbsent
	}
	return profile.WriteText(cmd.OutOrStdout(), profile.Build(rec, policy))
}

func init() {
	showCmd.Flags().StringVar(&showToken, "token", "", "Session credential (defaults to $PROFILE_TOKEN)")
	showCmd.Flags().StringVar(&showURL, "url", "", "Profile endpoint (defaults to $PROFILE_API_URL)")
	showCmd.Flags().BoolVar(&showStrict, "strict", false, "Only blank out missing or empty values")
	rootCmd.AddCommand(showCmd)
}
