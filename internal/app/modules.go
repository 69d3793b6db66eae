package app

import (
	"github.com/nfrund/profileview/internal/module"
	"github.com/nfrund/profileview/internal/modules/myprofile"
)

// ProfileBasePath is where the profile module is mounted.
const ProfileBasePath = "/profile"

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		// Add new application modules here.
		myprofile.New(myprofile.Dependencies{
			Fetcher:            deps.Profiles,
			Renderer:           deps.Renderer,
			Publisher:          deps.Bus,
			Credentials:        deps.Credentials,
			BasePath:           ProfileBasePath,
			LoginURL:           deps.Config.LoginURL,
			StrictPresence:     deps.Config.StrictPresence,
			RateLimitPerMinute: deps.Config.RateLimitPerMinute,
		}),
	}
}
