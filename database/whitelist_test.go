package database

import (
	"errors"
	"testing"
	"time"
)

func TestSubmitAccessRequestIdempotent(t *testing.T) {
	s := newTestStore(t)

	already, err := s.SubmitAccessRequest("u1", time.Now())
	if err != nil {
		t.Fatalf("SubmitAccessRequest: %v", err)
	}
	if already {
		t.Error("first submission reported as pending")
	}

	already, err = s.SubmitAccessRequest("u1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("SubmitAccessRequest: %v", err)
	}
	if !already {
		t.Error("second submission not reported as pending")
	}

	pending, err := s.PendingAccessRequests()
	if err != nil {
		t.Fatalf("PendingAccessRequests: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("pending = %+v, want one entry", pending)
	}
}

func TestJournalIndexAndResolve(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.SubmitAccessRequest("u1", time.Now()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.IndexJournalMessage("m1", "u1"); err != nil {
		t.Fatalf("IndexJournalMessage: %v", err)
	}

	userID, err := s.JournalRequest("m1")
	if err != nil {
		t.Fatalf("JournalRequest: %v", err)
	}
	if userID != "u1" {
		t.Errorf("JournalRequest = %q, want u1", userID)
	}

	if err := s.ResolveAccessRequest("u1"); err != nil {
		t.Fatalf("ResolveAccessRequest: %v", err)
	}
	if _, err := s.JournalRequest("m1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("JournalRequest after resolve = %v, want ErrNotFound", err)
	}
	pending, err := s.PendingAccessRequests()
	if err != nil {
		t.Fatalf("PendingAccessRequests: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after resolve = %+v", pending)
	}

	// Resolving again is a no-op.
	if err := s.ResolveAccessRequest("u1"); err != nil {
		t.Errorf("second resolve: %v", err)
	}
}

func TestPendingAccessRequestsOrdered(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if _, err := s.SubmitAccessRequest("late", base.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAccessRequest("early", base); err != nil {
		t.Fatal(err)
	}

	pending, err := s.PendingAccessRequests()
	if err != nil {
		t.Fatalf("PendingAccessRequests: %v", err)
	}
	if len(pending) != 2 || pending[0].UserID != "early" || pending[1].UserID != "late" {
		t.Errorf("pending order = %+v", pending)
	}
}
