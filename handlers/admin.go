package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lukaesebrot/dgc"

	"github.com/mbriand/atelier-bot/config"
	"github.com/mbriand/atelier-bot/database"
)

// ConfigSalonHandler binds a command to its only allowed channel.
// Usage: config_salon <commande> <#salon>
func (b *Bot) ConfigSalonHandler(ctx *dgc.Ctx) {
	if ctx.Arguments.Amount() < 2 {
		ctx.RespondText("Utilisation : `config_salon <commande> <#salon>`")
		return
	}
	command := strings.ToLower(ctx.Arguments.Get(0).Raw())
	channelID := ctx.Arguments.Get(1).AsChannelMentionID()
	if channelID == "" {
		ctx.RespondText("Le deuxième argument doit être une mention de salon.")
		return
	}
	if err := b.Store.SetAllowedChannel(command, channelID); err != nil {
		b.reportError(ctx.Session, "config_salon", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	ctx.RespondText(fmt.Sprintf("La commande `%s` est maintenant réservée à <#%s>.", command, channelID))
}

// ConfigRedirectionHandler binds a redirection kind to a channel.
// Usage: config_redirection <type> <#salon>
func (b *Bot) ConfigRedirectionHandler(ctx *dgc.Ctx) {
	if ctx.Arguments.Amount() < 2 {
		ctx.RespondText("Utilisation : `config_redirection <type> <#salon>`")
		return
	}
	kind := strings.ToLower(ctx.Arguments.Get(0).Raw())
	channelID := ctx.Arguments.Get(1).AsChannelMentionID()
	if channelID == "" {
		ctx.RespondText("Le deuxième argument doit être une mention de salon.")
		return
	}
	if err := b.Store.SetRedirection(kind, channelID); err != nil {
		b.reportError(ctx.Session, "config_redirection", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	ctx.RespondText(fmt.Sprintf("Redirection `%s` vers <#%s> enregistrée.", kind, channelID))
}

// ConfigOptionHandler sets one of the named single-binding options. Channel
// and role mentions are reduced to their id; anything else is stored as-is.
// Usage: config_option <nom> <valeur…>
func (b *Bot) ConfigOptionHandler(ctx *dgc.Ctx) {
	if ctx.Arguments.Amount() < 2 {
		ctx.RespondText(fmt.Sprintf("Utilisation : `config_option <nom> <valeur>`\nOptions : %s", strings.Join(database.OptionNames(), ", ")))
		return
	}
	name := strings.ToLower(ctx.Arguments.Get(0).Raw())
	value := strings.TrimSpace(strings.TrimPrefix(ctx.Arguments.Raw(), ctx.Arguments.Get(0).Raw()))
	arg := ctx.Arguments.Get(1)
	if id := arg.AsChannelMentionID(); id != "" && ctx.Arguments.Amount() == 2 {
		value = id
	} else if id := arg.AsRoleMentionID(); id != "" && ctx.Arguments.Amount() == 2 {
		value = id
	}
	if err := b.Store.SetOption(name, value); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			ctx.RespondText(fmt.Sprintf("Option inconnue. Options : %s", strings.Join(database.OptionNames(), ", ")))
			return
		}
		b.reportError(ctx.Session, "config_option", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	ctx.RespondText(fmt.Sprintf("Option `%s` enregistrée.", name))
}

// ReactionRoleHandler binds an emoji on a message to a role, replacing any
// previous role bound to that pair. The optional channel mention names the
// channel holding the message; it defaults to the invocation channel.
// Usage: reactionrole <message-id> <emoji> <@role> [#salon]
func (b *Bot) ReactionRoleHandler(ctx *dgc.Ctx) {
	if ctx.Arguments.Amount() < 3 {
		ctx.RespondText("Utilisation : `reactionrole <message-id> <emoji> <@role> [#salon]`")
		return
	}
	messageID := ctx.Arguments.Get(0).Raw()
	emoji := ctx.Arguments.Get(1).Raw()
	roleID := ctx.Arguments.Get(2).AsRoleMentionID()
	if roleID == "" {
		ctx.RespondText("Le troisième argument doit être une mention de rôle.")
		return
	}
	channelID := ctx.Event.ChannelID
	if ctx.Arguments.Amount() > 3 {
		channelID = ctx.Arguments.Get(3).AsChannelMentionID()
		if channelID == "" {
			ctx.RespondText("Le quatrième argument doit être une mention de salon.")
			return
		}
	}
	if err := b.Store.BindReactionRole(messageID, emoji, roleID); err != nil {
		b.reportError(ctx.Session, "reactionrole", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	// Seed the reaction so members only have to click it.
	if err := ctx.Session.MessageReactionAdd(channelID, messageID, database.EmojiAPIName(database.NormalizeEmoji(emoji))); err != nil {
		b.Log.Warn().Str("message", messageID).Err(err).Msg("failed to seed reaction")
	}
	ctx.RespondText(fmt.Sprintf("Réaction %s liée au rôle <@&%s> sur le message `%s`.", emoji, roleID, messageID))
}

// ReactionRoleStopHandler removes an emoji-to-role binding.
// Usage: reactionrole_stop <message-id> <emoji>
func (b *Bot) ReactionRoleStopHandler(ctx *dgc.Ctx) {
	if ctx.Arguments.Amount() < 2 {
		ctx.RespondText("Utilisation : `reactionrole_stop <message-id> <emoji>`")
		return
	}
	messageID := ctx.Arguments.Get(0).Raw()
	emoji := ctx.Arguments.Get(1).Raw()
	if err := b.Store.UnbindReactionRole(messageID, emoji); err != nil {
		b.reportError(ctx.Session, "reactionrole_stop", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	ctx.RespondText(fmt.Sprintf("Réaction %s déliée du message `%s`.", emoji, messageID))
}

// PermissionHandler appends a user or role to the allow list of a command
// or category.
// Usage: permission <commande-ou-catégorie> <@role|@user>
func (b *Bot) PermissionHandler(ctx *dgc.Ctx) {
	if ctx.Arguments.Amount() < 2 {
		ctx.RespondText("Utilisation : `permission <commande-ou-catégorie> <@role|@user>`")
		return
	}
	name := strings.ToLower(ctx.Arguments.Get(0).Raw())
	arg := ctx.Arguments.Get(1)
	var p database.Principal
	if id := arg.AsRoleMentionID(); id != "" {
		p = database.Principal{Kind: database.PrincipalRole, ID: id}
	} else if id := arg.AsUserMentionID(); id != "" {
		p = database.Principal{Kind: database.PrincipalMember, ID: id}
	} else {
		ctx.RespondText("Le deuxième argument doit être une mention de rôle ou de membre.")
		return
	}
	if err := b.Store.AddPermission(name, p); err != nil {
		b.reportError(ctx.Session, "permission", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	ctx.RespondText(fmt.Sprintf("Permission ajoutée sur `%s`.", name))
}

// ConfigRecapHandler sets the weekly recap schedule.
// Usage: config_recap <#salon> <jour> <hh:mm> [@role]
func (b *Bot) ConfigRecapHandler(ctx *dgc.Ctx) {
	if ctx.Arguments.Amount() < 3 {
		ctx.RespondText("Utilisation : `config_recap <#salon> <jour> <hh:mm> [@role]`")
		return
	}
	channelID := ctx.Arguments.Get(0).AsChannelMentionID()
	if channelID == "" {
		ctx.RespondText("Le premier argument doit être une mention de salon.")
		return
	}
	weekday, err := parseWeekday(ctx.Arguments.Get(1).Raw())
	if err != nil {
		ctx.RespondText("Jour invalide. Exemple : `dimanche` ou `sunday`.")
		return
	}
	at, err := parseClock(ctx.Arguments.Get(2).Raw())
	if err != nil {
		ctx.RespondText("Heure invalide, format attendu `hh:mm`.")
		return
	}
	var roleID string
	if ctx.Arguments.Amount() > 3 {
		roleID = ctx.Arguments.Get(3).AsRoleMentionID()
	}
	spec := database.RecapSpec{ChannelID: channelID, RoleID: roleID, Weekday: weekday, At: at}
	if err := b.Store.SetWeeklyRecapSpec(spec); err != nil {
		b.reportError(ctx.Session, "config_recap", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	ctx.RespondText(fmt.Sprintf("Récap hebdo programmé le %s à %s dans <#%s>.", ctx.Arguments.Get(1).Raw(), at, channelID))
}
