package database

// BindReactionRole inserts or replaces the binding for (messageID, emoji).
// The emoji is normalised here so callers may pass any accepted form. The
// per-message binding order is preserved on replace.
func (s *Store) BindReactionRole(messageID, emoji, roleID string) error {
	key := NormalizeEmoji(emoji)
	return mutate(s, docReactionRoles, func(doc *map[string][]ReactionRole) error {
		if *doc == nil {
			*doc = make(map[string][]ReactionRole)
		}
		bindings := (*doc)[messageID]
		for i, b := range bindings {
			if b.Emoji == key {
				bindings[i].RoleID = roleID
				return nil
			}
		}
		(*doc)[messageID] = append(bindings, ReactionRole{Emoji: key, RoleID: roleID})
		return nil
	})
}

// UnbindReactionRole removes the binding for (messageID, emoji).
func (s *Store) UnbindReactionRole(messageID, emoji string) error {
	key := NormalizeEmoji(emoji)
	return mutate(s, docReactionRoles, func(doc *map[string][]ReactionRole) error {
		bindings := (*doc)[messageID]
		for i, b := range bindings {
			if b.Emoji == key {
				bindings = append(bindings[:i], bindings[i+1:]...)
				break
			}
		}
		if len(bindings) == 0 {
			delete(*doc, messageID)
		} else {
			(*doc)[messageID] = bindings
		}
		return nil
	})
}

// ReactionRolesFor returns the role ids bound to (messageID, emoji). The
// emoji may be given in any accepted form.
func (s *Store) ReactionRolesFor(messageID, emoji string) ([]string, error) {
	key := NormalizeEmoji(emoji)
	var roles []string
	err := view(s, docReactionRoles, func(doc map[string][]ReactionRole) error {
		for _, b := range doc[messageID] {
			if b.Emoji == key {
				roles = append(roles, b.RoleID)
			}
		}
		return nil
	})
	return roles, err
}

// ReactionRoleBindings returns every binding on a message, in bind order.
func (s *Store) ReactionRoleBindings(messageID string) ([]ReactionRole, error) {
	var bindings []ReactionRole
	err := view(s, docReactionRoles, func(doc map[string][]ReactionRole) error {
		bindings = doc[messageID]
		return nil
	})
	return bindings, err
}
