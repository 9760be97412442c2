package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lukaesebrot/dgc"

	"github.com/mbriand/atelier-bot/config"
	"github.com/mbriand/atelier-bot/database"
)

// RappelHandler creates a reminder fired by DM at the given wall-clock time.
// Usage: rappel <hh:mm> [quotidien] <message…>
func (b *Bot) RappelHandler(ctx *dgc.Ctx) {
	if ctx.Arguments.Amount() < 2 {
		ctx.RespondText("Utilisation : `rappel <hh:mm> [quotidien] <message>`")
		return
	}
	at, err := parseClock(ctx.Arguments.Get(0).Raw())
	if err != nil {
		ctx.RespondText("Heure invalide, format attendu `hh:mm`.")
		return
	}

	next := 1
	daily := false
	if strings.EqualFold(ctx.Arguments.Get(1).Raw(), "quotidien") {
		daily = true
		next = 2
	}
	var words []string
	for i := next; i < ctx.Arguments.Amount(); i++ {
		words = append(words, ctx.Arguments.Get(i).Raw())
	}
	message := strings.Join(words, " ")
	if message == "" {
		ctx.RespondText("Il manque le message du rappel.")
		return
	}

	id, err := b.Store.AddReminder(ctx.Event.Author.ID, at, message, daily)
	if err != nil {
		b.reportError(ctx.Session, "rappel", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	kind := "une fois"
	if daily {
		kind = "tous les jours"
	}
	ctx.RespondText(fmt.Sprintf("Rappel enregistré à %s (%s). Id : `%s`", at, kind, id))
}

// RappelsHandler lists the caller's reminders.
func (b *Bot) RappelsHandler(ctx *dgc.Ctx) {
	reminders, err := b.Store.RemindersFor(ctx.Event.Author.ID)
	if err != nil {
		b.reportError(ctx.Session, "rappels", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	if len(reminders) == 0 {
		ctx.RespondText("Aucun rappel enregistré.")
		return
	}
	var sb strings.Builder
	sb.WriteString("Tes rappels :\n")
	for _, r := range reminders {
		kind := "une fois"
		if r.Daily {
			kind = "quotidien"
		}
		fmt.Fprintf(&sb, "• `%s` — %s (%s) : %s\n", r.ID, r.At, kind, r.Message)
	}
	ctx.RespondText(sb.String())
}

// RappelStopHandler deletes one of the caller's reminders.
// Usage: rappel_stop <id>
func (b *Bot) RappelStopHandler(ctx *dgc.Ctx) {
	if ctx.Arguments.Amount() < 1 {
		ctx.RespondText("Utilisation : `rappel_stop <id>`")
		return
	}
	id := ctx.Arguments.Get(0).Raw()
	err := b.Store.DeleteReminder(id, ctx.Event.Author.ID)
	if errors.Is(err, database.ErrNotFound) {
		ctx.RespondText("Rappel introuvable ou déjà supprimé.")
		return
	}
	if err != nil {
		b.reportError(ctx.Session, "rappel_stop", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	ctx.RespondText("Rappel supprimé. 🗑️")
}
