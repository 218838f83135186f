package toolchain

import (
	"github.com/go-git/go-git/v5/config"
)

// GitAuthor returns "Name <email>" from the user's global git config, the
// bare name when no email is set, or "" when nothing is configured.
func GitAuthor() string {
	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil || cfg.User.Name == "" {
		return ""
	}
	if cfg.User.Email == "" {
		return cfg.User.Name
	}
	return cfg.User.Name + " <" + cfg.User.Email + ">"
}
