package database

import (
	"fmt"

	"github.com/mbriand/atelier-bot/config"
)

// optionSlots maps the configurable single-binding option names to their
// field in GuildConfig. config_option accepts exactly these names.
var optionSlots = map[string]func(*GuildConfig) *string{
	"journal_validation_channel": func(c *GuildConfig) *string { return &c.JournalValidationChannel },
	"salon_rappel_whitelist":     func(c *GuildConfig) *string { return &c.SalonRappelWhitelist },
	"log_erreurs_channel":        func(c *GuildConfig) *string { return &c.LogErreursChannel },
	"salon_besoin_d_en_parler":   func(c *GuildConfig) *string { return &c.SalonBesoinDEnParler },
	"role_besoin_d_en_parler":    func(c *GuildConfig) *string { return &c.RoleBesoinDEnParler },
	"role_aide":                  func(c *GuildConfig) *string { return &c.RoleAide },
	"role_membre_id":             func(c *GuildConfig) *string { return &c.RoleMembreID },
	"role_non_verifie_id":        func(c *GuildConfig) *string { return &c.RoleNonVerifieID },
	"sortie_channel":             func(c *GuildConfig) *string { return &c.SortieChannel },
	"role_sortie":                func(c *GuildConfig) *string { return &c.RoleSortie },
	"role_staff_sortie":          func(c *GuildConfig) *string { return &c.RoleStaffSortie },
	"journal_burnout_channel":    func(c *GuildConfig) *string { return &c.JournalBurnoutChannel },
	"message_validation":         func(c *GuildConfig) *string { return &c.MessageValidation },
}

// OptionNames lists the names config_option accepts.
func OptionNames() []string {
	names := make([]string, 0, len(optionSlots))
	for n := range optionSlots {
		names = append(names, n)
	}
	return names
}

// GuildConfig returns the current configuration document.
func (s *Store) GuildConfig() (GuildConfig, error) {
	var cfg GuildConfig
	err := view(s, docConfig, func(doc GuildConfig) error {
		cfg = doc
		return nil
	})
	return cfg, err
}

// SetOption sets one of the single-binding options by its wire name.
func (s *Store) SetOption(name, value string) error {
	slot, ok := optionSlots[name]
	if !ok {
		return fmt.Errorf("%w: option %q", ErrNotFound, name)
	}
	return mutate(s, docConfig, func(cfg *GuildConfig) error {
		*slot(cfg) = value
		return nil
	})
}

// Option reads one of the single-binding options by its wire name.
func (s *Store) Option(name string) (string, error) {
	slot, ok := optionSlots[name]
	if !ok {
		return "", fmt.Errorf("%w: option %q", ErrNotFound, name)
	}
	var value string
	err := view(s, docConfig, func(cfg GuildConfig) error {
		value = *slot(&cfg)
		return nil
	})
	return value, err
}

// AllowedChannel returns the channel a command is bound to, or "" when the
// command may run anywhere.
func (s *Store) AllowedChannel(command string) (string, error) {
	var id string
	err := view(s, docConfig, func(cfg GuildConfig) error {
		id = cfg.AllowedChannels[command]
		return nil
	})
	return id, err
}

// SetAllowedChannel binds a command to a channel.
func (s *Store) SetAllowedChannel(command, channelID string) error {
	return mutate(s, docConfig, func(cfg *GuildConfig) error {
		if cfg.AllowedChannels == nil {
			cfg.AllowedChannels = make(map[string]string)
		}
		cfg.AllowedChannels[command] = channelID
		return nil
	})
}

// Redirection returns the channel bound to a redirection kind, or "".
func (s *Store) Redirection(kind string) (string, error) {
	var id string
	err := view(s, docConfig, func(cfg GuildConfig) error {
		id = cfg.Redirections[kind]
		return nil
	})
	return id, err
}

// SetRedirection binds a redirection kind to a channel.
func (s *Store) SetRedirection(kind, channelID string) error {
	return mutate(s, docConfig, func(cfg *GuildConfig) error {
		if cfg.Redirections == nil {
			cfg.Redirections = make(map[string]string)
		}
		cfg.Redirections[kind] = channelID
		return nil
	})
}

// PermissionsFor returns the ACL entries recorded for a command or category
// name. Empty means unrestricted.
func (s *Store) PermissionsFor(name string) ([]Principal, error) {
	var entries []Principal
	err := view(s, docConfig, func(cfg GuildConfig) error {
		entries = cfg.Permissions[name]
		return nil
	})
	return entries, err
}

// AddPermission appends a principal to the ACL of a command or category.
// Adding an already-listed principal is a no-op.
func (s *Store) AddPermission(name string, p Principal) error {
	return mutate(s, docConfig, func(cfg *GuildConfig) error {
		for _, e := range cfg.Permissions[name] {
			if e == p {
				return nil
			}
		}
		if cfg.Permissions == nil {
			cfg.Permissions = make(map[string][]Principal)
		}
		cfg.Permissions[name] = append(cfg.Permissions[name], p)
		return nil
	})
}

// WeeklyRecapSpec returns the recap schedule, or nil when unconfigured.
func (s *Store) WeeklyRecapSpec() (*RecapSpec, error) {
	var spec *RecapSpec
	err := view(s, docConfig, func(cfg GuildConfig) error {
		spec = cfg.WeeklyRecap
		return nil
	})
	return spec, err
}

// SetWeeklyRecapSpec replaces the recap schedule.
func (s *Store) SetWeeklyRecapSpec(spec RecapSpec) error {
	return mutate(s, docConfig, func(cfg *GuildConfig) error {
		cfg.WeeklyRecap = &spec
		return nil
	})
}

// ValidationMessage returns the configured post-accept DM template, falling
// back to the built-in default.
func (s *Store) ValidationMessage() (string, error) {
	cfg, err := s.GuildConfig()
	if err != nil {
		return "", err
	}
	if cfg.MessageValidation != "" {
		return cfg.MessageValidation, nil
	}
	return config.DefaultValidationMessage, nil
}
