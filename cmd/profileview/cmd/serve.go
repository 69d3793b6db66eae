package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nfrund/profileview/internal/config"
	"github.com/nfrund/profileview/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web application",
	Long: `Run the profile view web application.

Configuration is read from the environment and an optional .env file.
SESSION_SECRET and PROFILE_API_URL are required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Serve()
	},
}

// Serve loads the configuration and runs the server until it is signalled
// to stop.
func Serve() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s, err := server.New(cfg)
	if err != nil {
		return err
	}
	return s.Start()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
