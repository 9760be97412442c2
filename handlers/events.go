package handlers

import (
	"github.com/bwmarrin/discordgo"
)

// ReactionAdd dispatches reaction-added gateway events: first to the
// access-request journal, then to the reaction-role engine.
func (b *Bot) ReactionAdd(s *discordgo.Session, e *discordgo.MessageReactionAdd) {
	if e.UserID == s.State.User.ID {
		return
	}
	if b.journalReaction(s, e) {
		return
	}
	b.applyReactionRoles(s, e.GuildID, e.MessageID, e.Emoji, e.UserID, true)
}

// ReactionRemove mirrors ReactionAdd for role removal. Only the ids are
// needed; no member fetch is required to issue the removal.
func (b *Bot) ReactionRemove(s *discordgo.Session, e *discordgo.MessageReactionRemove) {
	if e.UserID == s.State.User.ID {
		return
	}
	b.applyReactionRoles(s, e.GuildID, e.MessageID, e.Emoji, e.UserID, false)
}

// applyReactionRoles grants or removes every role bound to the message and
// normalised emoji. Granting a held role and removing an absent one are
// no-ops; failures are logged, never surfaced to the reacting user.
func (b *Bot) applyReactionRoles(s *discordgo.Session, guildID, messageID string, emoji discordgo.Emoji, userID string, add bool) {
	roles, err := b.Store.ReactionRolesFor(messageID, emoji.APIName())
	if err != nil {
		b.reportError(s, "reaction roles: lookup", err)
		return
	}
	if len(roles) == 0 {
		return
	}

	held, err := b.memberRoles(s, guildID, userID)
	if err != nil {
		b.Log.Warn().Str("user", userID).Err(err).Msg("failed to fetch member for reaction role")
		return
	}

	for _, roleID := range roles {
		if add {
			if hasRole(held, roleID) {
				continue
			}
			if err := s.GuildMemberRoleAdd(guildID, userID, roleID); err != nil {
				b.Log.Warn().Str("user", userID).Str("role", roleID).Err(err).Msg("reaction role grant failed")
				continue
			}
			reactionRoleOps.WithLabelValues("grant").Inc()
		} else {
			if !hasRole(held, roleID) {
				continue
			}
			if err := s.GuildMemberRoleRemove(guildID, userID, roleID); err != nil {
				b.Log.Warn().Str("user", userID).Str("role", roleID).Err(err).Msg("reaction role removal failed")
				continue
			}
			reactionRoleOps.WithLabelValues("remove").Inc()
		}
	}
}
