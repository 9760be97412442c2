package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Lukaesebrot/dgc"

	"github.com/mbriand/atelier-bot/config"
	"github.com/mbriand/atelier-bot/database"
)

// The feature commands below are deliberately thin: each one reads a few
// arguments, touches one document through the store and echoes back. They
// also feed the aggregates of the weekly recap.

// CheckinHandler records a mood check-in.
// Usage: checkin <humeur…>
func (b *Bot) CheckinHandler(ctx *dgc.Ctx) {
	mood := strings.TrimSpace(ctx.Arguments.Raw())
	if mood == "" {
		ctx.RespondText("Utilisation : `checkin <humeur>`")
		return
	}
	if err := b.Store.AddMood(ctx.Event.Author.ID, mood, time.Now()); err != nil {
		b.reportError(ctx.Session, "checkin", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	ctx.RespondText("Humeur notée, merci pour ton check-in. 💙")
}

// HumeurHandler shows the caller's last check-ins.
func (b *Bot) HumeurHandler(ctx *dgc.Ctx) {
	entries, err := b.Store.Moods(ctx.Event.Author.ID)
	if err != nil {
		b.reportError(ctx.Session, "humeur", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	if len(entries) == 0 {
		ctx.RespondText("Aucun check-in pour le moment. Essaie `checkin <humeur>`.")
		return
	}
	if len(entries) > 5 {
		entries = entries[len(entries)-5:]
	}
	var sb strings.Builder
	sb.WriteString("Tes derniers check-ins :\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "• %s — %s\n", e.At.Format("02/01 15:04"), e.Mood)
	}
	ctx.RespondText(sb.String())
}

// PomodoroHandler adds completed minutes to the caller's tally.
// Usage: pomodoro [minutes]
func (b *Bot) PomodoroHandler(ctx *dgc.Ctx) {
	minutes := 25
	if ctx.Arguments.Amount() > 0 {
		n, err := ctx.Arguments.Get(0).AsInt()
		if err != nil || n <= 0 {
			ctx.RespondText("Utilisation : `pomodoro [minutes]`")
			return
		}
		minutes = n
	}
	if err := b.Store.AddPomodoro(ctx.Event.Author.ID, minutes); err != nil {
		b.reportError(ctx.Session, "pomodoro", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	ctx.RespondText(fmt.Sprintf("%d minutes de focus ajoutées. 🍅", minutes))
}

// ObjectifHandler manages the caller's goal list.
// Usage: objectif add <texte…> | objectif done <n> | objectif list
func (b *Bot) ObjectifHandler(ctx *dgc.Ctx) {
	if ctx.Arguments.Amount() < 1 {
		ctx.RespondText("Utilisation : `objectif add <texte>`, `objectif done <n>` ou `objectif list`")
		return
	}
	userID := ctx.Event.Author.ID
	switch strings.ToLower(ctx.Arguments.Get(0).Raw()) {
	case "add":
		text := strings.TrimSpace(strings.TrimPrefix(ctx.Arguments.Raw(), ctx.Arguments.Get(0).Raw()))
		if text == "" {
			ctx.RespondText("Il manque le texte de l'objectif.")
			return
		}
		n, err := b.Store.AddGoal(userID, text)
		if err != nil {
			b.reportError(ctx.Session, "objectif add", err)
			ctx.RespondText(config.FailureMessage)
			return
		}
		ctx.RespondText(fmt.Sprintf("Objectif n°%d enregistré. 🎯", n))
	case "done":
		if ctx.Arguments.Amount() < 2 {
			ctx.RespondText("Utilisation : `objectif done <n>`")
			return
		}
		n, err := ctx.Arguments.Get(1).AsInt()
		if err != nil {
			ctx.RespondText("Le numéro d'objectif doit être un entier.")
			return
		}
		err = b.Store.CompleteGoal(userID, n)
		if errors.Is(err, database.ErrNotFound) {
			ctx.RespondText("Objectif introuvable.")
			return
		}
		if err != nil {
			b.reportError(ctx.Session, "objectif done", err)
			ctx.RespondText(config.FailureMessage)
			return
		}
		ctx.RespondText(fmt.Sprintf("Objectif n°%d terminé, bravo ! 🎉", n))
	case "list":
		goals, err := b.Store.Goals(userID)
		if err != nil {
			b.reportError(ctx.Session, "objectif list", err)
			ctx.RespondText(config.FailureMessage)
			return
		}
		if len(goals) == 0 {
			ctx.RespondText("Aucun objectif pour le moment.")
			return
		}
		var sb strings.Builder
		sb.WriteString("Tes objectifs :\n")
		for i, g := range goals {
			mark := "⬜"
			if g.Done {
				mark = "✅"
			}
			fmt.Fprintf(&sb, "%s n°%d — %s\n", mark, i+1, g.Text)
		}
		ctx.RespondText(sb.String())
	default:
		ctx.RespondText("Sous-commande inconnue. Utilise `add`, `done` ou `list`.")
	}
}

// CitationHandler appends to the shared citation list drawn by the recap.
// Usage: citation <texte…>
func (b *Bot) CitationHandler(ctx *dgc.Ctx) {
	text := strings.TrimSpace(ctx.Arguments.Raw())
	if text == "" {
		ctx.RespondText("Utilisation : `citation <texte>`")
		return
	}
	if err := b.Store.AddCitation(text); err != nil {
		b.reportError(ctx.Session, "citation", err)
		ctx.RespondText(config.FailureMessage)
		return
	}
	ctx.RespondText("Citation ajoutée. 📖")
}
