// Package handlers wires the command surface of the bot: the pre-handler
// gate, the admin bind commands, the access-request workflow, the reaction
// events and the feature commands.
package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/mbriand/atelier-bot/config"
	"github.com/mbriand/atelier-bot/database"
)

// Bot groups the shared state every handler needs. It is built once in main
// and threaded explicitly; there are no package-level singletons.
type Bot struct {
	Store *database.Store
	Cfg   config.Config
	Log   zerolog.Logger
}

// New builds the handler set.
func New(store *database.Store, cfg config.Config, log zerolog.Logger) *Bot {
	return &Bot{Store: store, Cfg: cfg, Log: log.With().Str("component", "handlers").Logger()}
}

// dm sends a direct message. Closed DMs surface as an error the caller may
// ignore.
func (b *Bot) dm(s *discordgo.Session, userID, content string) error {
	ch, err := s.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = s.ChannelMessageSend(ch.ID, content)
	return err
}

// reportError logs err and mirrors it to the configured error channel when
// one is bound.
func (b *Bot) reportError(s *discordgo.Session, context string, err error) {
	b.Log.Error().Str("context", context).Err(err).Msg("handler error")
	cfg, cfgErr := b.Store.GuildConfig()
	if cfgErr != nil || cfg.LogErreursChannel == "" {
		return
	}
	_, sendErr := s.ChannelMessageSend(cfg.LogErreursChannel, fmt.Sprintf("⚠️ `%s`\n```%v```", context, err))
	if sendErr != nil {
		b.Log.Error().Err(sendErr).Msg("failed to post to error channel")
	}
}

// isAdmin reports whether the user holds administrator permission in the
// channel.
func (b *Bot) isAdmin(s *discordgo.Session, userID, channelID string) bool {
	perms, err := s.UserChannelPermissions(userID, channelID)
	if err != nil {
		b.Log.Warn().Str("user", userID).Err(err).Msg("failed to compute permissions")
		return false
	}
	return perms&discordgo.PermissionAdministrator == discordgo.PermissionAdministrator
}

// memberRoles fetches the role ids of a guild member.
func (b *Bot) memberRoles(s *discordgo.Session, guildID, userID string) ([]string, error) {
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		return nil, err
	}
	return member.Roles, nil
}

// resolveRole returns the configured role id, falling back to a lookup by
// role name in the guild.
func (b *Bot) resolveRole(s *discordgo.Session, guildID, configuredID, fallbackName string) string {
	if configuredID != "" {
		return configuredID
	}
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		b.Log.Warn().Str("role", fallbackName).Err(err).Msg("failed to list guild roles")
		return ""
	}
	for _, r := range roles {
		if r.Name == fallbackName {
			return r.ID
		}
	}
	return ""
}

func hasRole(roleIDs []string, roleID string) bool {
	for _, r := range roleIDs {
		if r == roleID {
			return true
		}
	}
	return false
}
