package database

import (
	"math/rand"
	"time"
)

// Feature documents are the small user-scoped records owned by the feature
// commands. The weekly recap aggregates over them. Anything not covered by
// the typed accessors below can use LoadFeature/SaveFeature directly.

// LoadFeature reads an arbitrary feature document into v.
func (s *Store) LoadFeature(name string, v interface{}) error {
	return s.Load("feature_"+name, v)
}

// SaveFeature replaces an arbitrary feature document.
func (s *Store) SaveFeature(name string, v interface{}) error {
	return s.Save("feature_"+name, v)
}

// AddMood appends a mood check-in to the user's history.
func (s *Store) AddMood(userID, mood string, at time.Time) error {
	return mutate(s, docMoods, func(doc *map[string][]MoodEntry) error {
		if *doc == nil {
			*doc = make(map[string][]MoodEntry)
		}
		(*doc)[userID] = append((*doc)[userID], MoodEntry{Mood: mood, At: at})
		return nil
	})
}

// Moods returns the user's mood history, oldest first.
func (s *Store) Moods(userID string) ([]MoodEntry, error) {
	var entries []MoodEntry
	err := view(s, docMoods, func(doc map[string][]MoodEntry) error {
		entries = doc[userID]
		return nil
	})
	return entries, err
}

// MoodCount returns the total number of check-ins across all users.
func (s *Store) MoodCount() (int, error) {
	var n int
	err := view(s, docMoods, func(doc map[string][]MoodEntry) error {
		for _, entries := range doc {
			n += len(entries)
		}
		return nil
	})
	return n, err
}

// AddPomodoro adds completed minutes to the user's tally.
func (s *Store) AddPomodoro(userID string, minutes int) error {
	return mutate(s, docPomodoro, func(doc *map[string]int) error {
		if *doc == nil {
			*doc = make(map[string]int)
		}
		(*doc)[userID] += minutes
		return nil
	})
}

// PomodoroTotal returns the minutes accumulated across all users.
func (s *Store) PomodoroTotal() (int, error) {
	var total int
	err := view(s, docPomodoro, func(doc map[string]int) error {
		for _, m := range doc {
			total += m
		}
		return nil
	})
	return total, err
}

// AddGoal appends a goal to the user's list and returns its 1-based number.
func (s *Store) AddGoal(userID, text string) (int, error) {
	var n int
	err := mutate(s, docGoals, func(doc *map[string][]Goal) error {
		if *doc == nil {
			*doc = make(map[string][]Goal)
		}
		(*doc)[userID] = append((*doc)[userID], Goal{Text: text})
		n = len((*doc)[userID])
		return nil
	})
	return n, err
}

// CompleteGoal marks the user's n-th goal (1-based) as done.
func (s *Store) CompleteGoal(userID string, n int) error {
	return mutate(s, docGoals, func(doc *map[string][]Goal) error {
		goals := (*doc)[userID]
		if n < 1 || n > len(goals) {
			return ErrNotFound
		}
		goals[n-1].Done = true
		return nil
	})
}

// Goals returns the user's goals in creation order.
func (s *Store) Goals(userID string) ([]Goal, error) {
	var goals []Goal
	err := view(s, docGoals, func(doc map[string][]Goal) error {
		goals = doc[userID]
		return nil
	})
	return goals, err
}

// CompletedGoals counts the goals marked done across all users.
func (s *Store) CompletedGoals() (int, error) {
	var n int
	err := view(s, docGoals, func(doc map[string][]Goal) error {
		for _, goals := range doc {
			for _, g := range goals {
				if g.Done {
					n++
				}
			}
		}
		return nil
	})
	return n, err
}

// AddCitation appends to the shared citation list.
func (s *Store) AddCitation(text string) error {
	return mutate(s, docCitations, func(doc *[]string) error {
		*doc = append(*doc, text)
		return nil
	})
}

// RandomCitation draws one citation, or "" when the list is empty.
func (s *Store) RandomCitation() (string, error) {
	var citation string
	err := view(s, docCitations, func(doc []string) error {
		if len(doc) > 0 {
			citation = doc[rand.Intn(len(doc))]
		}
		return nil
	})
	return citation, err
}

// RecapSentWeek returns the ISO week key of the last recap sent, or "".
func (s *Store) RecapSentWeek() (string, error) {
	var week string
	err := view(s, docRecapState, func(doc recapState) error {
		week = doc.LastWeek
		return nil
	})
	return week, err
}

// MarkRecapSent latches the recap for the given ISO week key.
func (s *Store) MarkRecapSent(week string) error {
	return mutate(s, docRecapState, func(doc *recapState) error {
		doc.LastWeek = week
		return nil
	})
}
