package database

import (
	"errors"
	"testing"
	"time"
)

func TestMoodAggregation(t *testing.T) {
	s := newTestStore(t)

	now := time.Now()
	if err := s.AddMood("u1", "motivé", now); err != nil {
		t.Fatal(err)
	}
	if err := s.AddMood("u1", "fatigué", now.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := s.AddMood("u2", "calme", now); err != nil {
		t.Fatal(err)
	}

	entries, err := s.Moods("u1")
	if err != nil {
		t.Fatalf("Moods: %v", err)
	}
	if len(entries) != 2 || entries[0].Mood != "motivé" {
		t.Errorf("entries = %+v", entries)
	}

	n, err := s.MoodCount()
	if err != nil {
		t.Fatalf("MoodCount: %v", err)
	}
	if n != 3 {
		t.Errorf("MoodCount = %d, want 3", n)
	}
}

func TestPomodoroTotal(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddPomodoro("u1", 25); err != nil {
		t.Fatal(err)
	}
	if err := s.AddPomodoro("u1", 25); err != nil {
		t.Fatal(err)
	}
	if err := s.AddPomodoro("u2", 50); err != nil {
		t.Fatal(err)
	}

	total, err := s.PomodoroTotal()
	if err != nil {
		t.Fatalf("PomodoroTotal: %v", err)
	}
	if total != 100 {
		t.Errorf("PomodoroTotal = %d, want 100", total)
	}
}

func TestGoals(t *testing.T) {
	s := newTestStore(t)

	n, err := s.AddGoal("u1", "lire 20 pages")
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}
	if n != 1 {
		t.Errorf("first goal number = %d, want 1", n)
	}

	if err := s.CompleteGoal("u1", 1); err != nil {
		t.Fatalf("CompleteGoal: %v", err)
	}
	if err := s.CompleteGoal("u1", 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("CompleteGoal(5) = %v, want ErrNotFound", err)
	}

	goals, err := s.Goals("u1")
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 1 || !goals[0].Done {
		t.Errorf("goals = %+v", goals)
	}

	done, err := s.CompletedGoals()
	if err != nil {
		t.Fatalf("CompletedGoals: %v", err)
	}
	if done != 1 {
		t.Errorf("CompletedGoals = %d, want 1", done)
	}
}

func TestRandomCitation(t *testing.T) {
	s := newTestStore(t)

	c, err := s.RandomCitation()
	if err != nil {
		t.Fatalf("RandomCitation: %v", err)
	}
	if c != "" {
		t.Errorf("citation from empty list = %q", c)
	}

	if err := s.AddCitation("la régularité bat l'intensité"); err != nil {
		t.Fatal(err)
	}
	c, err = s.RandomCitation()
	if err != nil {
		t.Fatalf("RandomCitation: %v", err)
	}
	if c != "la régularité bat l'intensité" {
		t.Errorf("citation = %q", c)
	}
}

func TestRecapLatch(t *testing.T) {
	s := newTestStore(t)

	week, err := s.RecapSentWeek()
	if err != nil {
		t.Fatalf("RecapSentWeek: %v", err)
	}
	if week != "" {
		t.Errorf("initial latch = %q, want empty", week)
	}

	if err := s.MarkRecapSent("2026-W35"); err != nil {
		t.Fatalf("MarkRecapSent: %v", err)
	}
	week, err = s.RecapSentWeek()
	if err != nil {
		t.Fatalf("RecapSentWeek: %v", err)
	}
	if week != "2026-W35" {
		t.Errorf("latch = %q, want 2026-W35", week)
	}
}

func TestGenericFeatureDocuments(t *testing.T) {
	s := newTestStore(t)

	type warLog struct {
		Entries []string `json:"entries"`
	}
	if err := s.SaveFeature("journal_de_guerre", warLog{Entries: []string{"jour 1"}}); err != nil {
		t.Fatalf("SaveFeature: %v", err)
	}
	var out warLog
	if err := s.LoadFeature("journal_de_guerre", &out); err != nil {
		t.Fatalf("LoadFeature: %v", err)
	}
	if len(out.Entries) != 1 || out.Entries[0] != "jour 1" {
		t.Errorf("feature doc = %+v", out)
	}
}
