package scheduler

import (
	"time"

	"github.com/mbriand/atelier-bot/database"
)

// dueReminders selects the reminders whose wall-clock time equals hhmm.
func dueReminders(reminders []database.Reminder, hhmm string) []database.Reminder {
	var due []database.Reminder
	for _, r := range reminders {
		if r.At == hhmm {
			due = append(due, r)
		}
	}
	return due
}

// tickReminders fires every reminder matching the current minute. One-shot
// reminders are erased only after a successful send, so a failed DM gets
// another chance on a later matching minute.
func (sc *Scheduler) tickReminders(now time.Time) error {
	reminders, err := sc.Store.Reminders()
	if err != nil {
		return err
	}
	for _, r := range dueReminders(reminders, now.Format("15:04")) {
		if err := sc.dm(r.UserID, "⏰ Rappel : "+r.Message); err != nil {
			sc.Log.Warn().Str("reminder", r.ID).Str("user", r.UserID).Err(err).Msg("reminder DM failed")
			continue
		}
		if r.Daily {
			continue
		}
		if err := sc.Store.DeleteReminder(r.ID, ""); err != nil {
			sc.Log.Warn().Str("reminder", r.ID).Err(err).Msg("failed to erase one-shot reminder")
		}
	}
	return nil
}
