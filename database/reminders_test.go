package database

import (
	"errors"
	"testing"
)

func TestReminderLifecycle(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddReminder("u1", "09:00", "hydrate", false)
	if err != nil {
		t.Fatalf("AddReminder: %v", err)
	}
	if id == "" {
		t.Fatal("empty reminder id")
	}

	mine, err := s.RemindersFor("u1")
	if err != nil {
		t.Fatalf("RemindersFor: %v", err)
	}
	if len(mine) != 1 || mine[0].Message != "hydrate" || mine[0].Daily {
		t.Errorf("reminders = %+v", mine)
	}

	if err := s.DeleteReminder(id, "u1"); err != nil {
		t.Fatalf("DeleteReminder: %v", err)
	}
	mine, err = s.RemindersFor("u1")
	if err != nil {
		t.Fatalf("RemindersFor: %v", err)
	}
	if len(mine) != 0 {
		t.Errorf("reminders after delete = %+v", mine)
	}
}

func TestDeleteReminderUnknownID(t *testing.T) {
	s := newTestStore(t)

	if err := s.DeleteReminder("nope", "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteReminder(nope) = %v, want ErrNotFound", err)
	}
}

func TestDeleteReminderOwnership(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddReminder("owner", "09:00", "hydrate", true)
	if err != nil {
		t.Fatalf("AddReminder: %v", err)
	}

	if err := s.DeleteReminder(id, "intruder"); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign delete = %v, want ErrNotFound", err)
	}

	// The scheduler deletes without an owner check.
	if err := s.DeleteReminder(id, ""); err != nil {
		t.Errorf("scheduler delete: %v", err)
	}
}
