package handlers

import (
	"fmt"
	"time"

	"github.com/Lukaesebrot/dgc"
	"github.com/bwmarrin/discordgo"

	"github.com/mbriand/atelier-bot/config"
)

// DemanderAccesHandler - A non-verified member asks to join. The request is
// idempotent while pending; an embed with accept/refuse reactions goes to
// the validation journal.
func (b *Bot) DemanderAccesHandler(ctx *dgc.Ctx) {
	userID := ctx.Event.Author.ID

	cfg, err := b.Store.GuildConfig()
	if err != nil {
		b.reportError(ctx.Session, "demander_acces: config load", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	if cfg.JournalValidationChannel == "" {
		b.Log.Warn().Msg("journal_validation_channel is not configured")
		ctx.RespondText(config.FailureMessage)
		return
	}

	already, err := b.Store.SubmitAccessRequest(userID, time.Now())
	if err != nil {
		b.reportError(ctx.Session, "demander_acces: submit", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	if already {
		ctx.RespondText("Ta demande est déjà en cours de traitement. 🕐")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Demande d'accès",
		Description: fmt.Sprintf("<@%s> demande l'accès au serveur.\n%s pour accepter, %s pour refuser.", userID, config.AcceptEmoji, config.RefuseEmoji),
		Color:       0x5865F2,
		Footer:      &discordgo.MessageEmbedFooter{Text: userID},
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	msg, err := ctx.Session.ChannelMessageSendEmbed(cfg.JournalValidationChannel, embed)
	if err != nil {
		b.reportError(ctx.Session, "demander_acces: journal post", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	if err := b.Store.IndexJournalMessage(msg.ID, userID); err != nil {
		b.reportError(ctx.Session, "demander_acces: journal index", err)
	}
	ctx.Session.MessageReactionAdd(msg.ChannelID, msg.ID, config.AcceptEmoji)
	ctx.Session.MessageReactionAdd(msg.ChannelID, msg.ID, config.RefuseEmoji)

	ctx.RespondText("Ta demande a été transmise. ✅")
}

// journalReaction resolves an accept/refuse reaction on a journal message.
// Returns true when the reaction belonged to the journal, whether or not it
// led to a transition.
func (b *Bot) journalReaction(s *discordgo.Session, e *discordgo.MessageReactionAdd) bool {
	cfg, err := b.Store.GuildConfig()
	if err != nil {
		b.reportError(s, "journal: config load", err)
		return false
	}
	if cfg.JournalValidationChannel == "" || e.ChannelID != cfg.JournalValidationChannel {
		return false
	}
	userID, err := b.Store.JournalRequest(e.MessageID)
	if err != nil {
		// Not a journal message (or already resolved).
		return false
	}

	emoji := e.Emoji.APIName()
	if emoji != config.AcceptEmoji && emoji != config.RefuseEmoji {
		return true
	}

	// Only staff with Manage Roles may resolve a request.
	perms, err := s.UserChannelPermissions(e.UserID, e.ChannelID)
	if err != nil || perms&discordgo.PermissionManageRoles != discordgo.PermissionManageRoles {
		return true
	}

	if emoji == config.AcceptEmoji {
		b.acceptRequest(s, e, cfg.RoleMembreID, cfg.RoleNonVerifieID, userID)
	} else {
		b.refuseRequest(s, e, userID)
	}
	return true
}

func (b *Bot) acceptRequest(s *discordgo.Session, e *discordgo.MessageReactionAdd, memberRoleID, nonVerifiedRoleID, userID string) {
	memberRole := b.resolveRole(s, e.GuildID, memberRoleID, config.RoleMemberName)
	nonVerified := b.resolveRole(s, e.GuildID, nonVerifiedRoleID, config.RoleNonVerifiedName)

	// The member may have left since submitting; resolve the record anyway.
	if _, err := s.GuildMember(e.GuildID, userID); err != nil {
		b.Log.Info().Str("user", userID).Msg("access request accepted for a missing member")
	} else {
		if nonVerified != "" {
			if err := s.GuildMemberRoleRemove(e.GuildID, userID, nonVerified); err != nil {
				b.Log.Warn().Str("user", userID).Err(err).Msg("failed to remove non-verified role")
			}
		}
		if memberRole != "" {
			if err := s.GuildMemberRoleAdd(e.GuildID, userID, memberRole); err != nil {
				b.reportError(s, "journal: member role grant", err)
			}
		}
		template, err := b.Store.ValidationMessage()
		if err != nil {
			template = config.DefaultValidationMessage
		}
		if err := b.dm(s, userID, template); err != nil {
			b.Log.Info().Str("user", userID).Err(err).Msg("validation DM not delivered")
		}
	}

	if err := b.Store.ResolveAccessRequest(userID); err != nil {
		b.reportError(s, "journal: resolve", err)
		return
	}
	b.annotateJournal(s, e, fmt.Sprintf("%s Acceptée par <@%s>", config.AcceptEmoji, e.UserID))
}

func (b *Bot) refuseRequest(s *discordgo.Session, e *discordgo.MessageReactionAdd, userID string) {
	if err := b.dm(s, userID, config.DefaultRefusalMessage); err != nil {
		b.Log.Info().Str("user", userID).Err(err).Msg("refusal DM not delivered")
	}
	if err := b.Store.ResolveAccessRequest(userID); err != nil {
		b.reportError(s, "journal: resolve", err)
		return
	}
	b.annotateJournal(s, e, fmt.Sprintf("%s Refusée par <@%s>", config.RefuseEmoji, e.UserID))
}

// annotateJournal appends the outcome to the journal message and clears the
// controls.
func (b *Bot) annotateJournal(s *discordgo.Session, e *discordgo.MessageReactionAdd, note string) {
	msg, err := s.ChannelMessage(e.ChannelID, e.MessageID)
	if err != nil {
		b.Log.Warn().Err(err).Msg("failed to fetch journal message")
		return
	}
	content := note
	if msg.Content != "" {
		content = msg.Content + "\n" + note
	}
	if _, err := s.ChannelMessageEdit(e.ChannelID, e.MessageID, content); err != nil {
		b.Log.Warn().Err(err).Msg("failed to annotate journal message")
	}
	s.MessageReactionsRemoveAll(e.ChannelID, e.MessageID)
}
