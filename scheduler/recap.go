package scheduler

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mbriand/atelier-bot/database"
)

// WeekKey returns the ISO week latch key for a point in time, e.g.
// "2026-W35". Latching per week instead of clearing a boolean on Monday
// removes the midnight race entirely.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// recapDue reports whether the recap must be sent now, given the schedule
// and the latched week of the last send.
func recapDue(spec database.RecapSpec, lastWeek string, now time.Time) bool {
	if now.Weekday() != spec.Weekday || now.Format("15:04") != spec.At {
		return false
	}
	return WeekKey(now) != lastWeek
}

// tickRecap posts the weekly recap once per ISO week at the configured
// weekday and minute. The latch is written only after a successful post, so
// a failure retries within the same minute of a later week, and a restart
// inside the scheduled minute cannot double-send.
func (sc *Scheduler) tickRecap(now time.Time) error {
	spec, err := sc.Store.WeeklyRecapSpec()
	if err != nil {
		return err
	}
	if spec == nil {
		return nil
	}
	lastWeek, err := sc.Store.RecapSentWeek()
	if err != nil {
		return err
	}
	if !recapDue(*spec, lastWeek, now) {
		return nil
	}

	embed, err := sc.composeRecap()
	if err != nil {
		return err
	}
	content := "📬 Le récap de la semaine !"
	if spec.RoleID != "" {
		content = fmt.Sprintf("<@&%s> %s", spec.RoleID, content)
	}
	if _, err := sc.Session.ChannelMessageSendComplex(spec.ChannelID, &discordgo.MessageSend{
		Content: content,
		Embed:   embed,
	}); err != nil {
		return err
	}
	recapsSent.Inc()
	return sc.Store.MarkRecapSent(WeekKey(now))
}

// composeRecap aggregates over the feature documents.
func (sc *Scheduler) composeRecap() (*discordgo.MessageEmbed, error) {
	moods, err := sc.Store.MoodCount()
	if err != nil {
		return nil, err
	}
	pomodoro, err := sc.Store.PomodoroTotal()
	if err != nil {
		return nil, err
	}
	goals, err := sc.Store.CompletedGoals()
	if err != nil {
		return nil, err
	}
	citation, err := sc.Store.RandomCitation()
	if err != nil {
		return nil, err
	}

	embed := &discordgo.MessageEmbed{
		Title: "Récap hebdomadaire",
		Color: 0x57F287,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Check-ins humeur", Value: fmt.Sprintf("%d", moods), Inline: true},
			{Name: "Minutes de focus", Value: fmt.Sprintf("%d", pomodoro), Inline: true},
			{Name: "Objectifs terminés", Value: fmt.Sprintf("%d", goals), Inline: true},
		},
	}
	if citation != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Citation de la semaine",
			Value: citation,
		})
	}
	return embed, nil
}
