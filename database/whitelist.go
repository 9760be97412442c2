package database

import (
	"sort"
	"time"
)

// SubmitAccessRequest records a pending request for the user. A second
// submission while one is pending is a no-op; already reports which.
func (s *Store) SubmitAccessRequest(userID string, at time.Time) (already bool, err error) {
	err = mutate(s, docWhitelist, func(doc *whitelistDoc) error {
		if _, ok := doc.Pending[userID]; ok {
			already = true
			return nil
		}
		if doc.Pending == nil {
			doc.Pending = make(map[string]AccessRequest)
		}
		doc.Pending[userID] = AccessRequest{UserID: userID, SubmittedAt: at}
		return nil
	})
	return already, err
}

// IndexJournalMessage remembers which journal message carries the
// accept/refuse controls for the user's request.
func (s *Store) IndexJournalMessage(messageID, userID string) error {
	return mutate(s, docWhitelist, func(doc *whitelistDoc) error {
		if doc.Journal == nil {
			doc.Journal = make(map[string]string)
		}
		doc.Journal[messageID] = userID
		return nil
	})
}

// JournalRequest resolves a journal message back to the requesting user.
func (s *Store) JournalRequest(messageID string) (string, error) {
	var userID string
	err := view(s, docWhitelist, func(doc whitelistDoc) error {
		userID = doc.Journal[messageID]
		return nil
	})
	if err != nil {
		return "", err
	}
	if userID == "" {
		return "", ErrNotFound
	}
	return userID, nil
}

// ResolveAccessRequest erases the pending record and its journal index once
// an admin accepted or refused it. Resolving an absent request is a no-op.
func (s *Store) ResolveAccessRequest(userID string) error {
	return mutate(s, docWhitelist, func(doc *whitelistDoc) error {
		delete(doc.Pending, userID)
		for mid, uid := range doc.Journal {
			if uid == userID {
				delete(doc.Journal, mid)
			}
		}
		return nil
	})
}

// PendingAccessRequests returns the unresolved requests, oldest first.
func (s *Store) PendingAccessRequests() ([]AccessRequest, error) {
	var pending []AccessRequest
	err := view(s, docWhitelist, func(doc whitelistDoc) error {
		for _, req := range doc.Pending {
			pending = append(pending, req)
		}
		return nil
	})
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].SubmittedAt.Before(pending[j].SubmittedAt)
	})
	return pending, err
}
