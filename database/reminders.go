package database

import (
	"github.com/google/uuid"
)

// AddReminder records a reminder and returns its generated id.
func (s *Store) AddReminder(userID, at, message string, daily bool) (string, error) {
	id := uuid.NewString()
	err := mutate(s, docReminders, func(doc *[]Reminder) error {
		*doc = append(*doc, Reminder{ID: id, UserID: userID, At: at, Message: message, Daily: daily})
		return nil
	})
	return id, err
}

// Reminders returns every recorded reminder.
func (s *Store) Reminders() ([]Reminder, error) {
	var reminders []Reminder
	err := view(s, docReminders, func(doc []Reminder) error {
		reminders = doc
		return nil
	})
	return reminders, err
}

// RemindersFor returns the reminders owned by a user.
func (s *Store) RemindersFor(userID string) ([]Reminder, error) {
	var mine []Reminder
	err := view(s, docReminders, func(doc []Reminder) error {
		for _, r := range doc {
			if r.UserID == userID {
				mine = append(mine, r)
			}
		}
		return nil
	})
	return mine, err
}

// DeleteReminder erases a reminder. When ownerID is non-empty the reminder
// must belong to that user. Unknown ids return ErrNotFound.
func (s *Store) DeleteReminder(id, ownerID string) error {
	return mutate(s, docReminders, func(doc *[]Reminder) error {
		for i, r := range *doc {
			if r.ID != id {
				continue
			}
			if ownerID != "" && r.UserID != ownerID {
				return ErrNotFound
			}
			*doc = append((*doc)[:i], (*doc)[i+1:]...)
			return nil
		}
		return ErrNotFound
	})
}
