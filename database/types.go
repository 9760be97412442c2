package database

import (
	"time"
)

// Principal - A permission entry target, either a member or a role
type Principal struct {
	Kind string `json:"kind"` // "member" or "role"
	ID   string `json:"id"`
}

// PrincipalMember and PrincipalRole are the two Principal kinds.
const (
	PrincipalMember = "member"
	PrincipalRole   = "role"
)

// Matches reports whether the principal designates the given user or one of
// its roles.
func (p Principal) Matches(userID string, roleIDs []string) bool {
	switch p.Kind {
	case PrincipalMember:
		return p.ID == userID
	case PrincipalRole:
		for _, r := range roleIDs {
			if p.ID == r {
				return true
			}
		}
	}
	return false
}

// RecapSpec - Weekly recap schedule and destination
type RecapSpec struct {
	ChannelID string       `json:"channel_id"`
	RoleID    string       `json:"role_id,omitempty"`
	Weekday   time.Weekday `json:"weekday"`
	At        string       `json:"hh_mm"` // "15:04" wall clock
}

// GuildConfig - The configuration document. Wire names keep the keys the
// admins already know from the previous incarnation of the bot.
type GuildConfig struct {
	AllowedChannels map[string]string `json:"salons_autorises,omitempty"`
	Redirections    map[string]string `json:"redirections,omitempty"`

	JournalValidationChannel string `json:"journal_validation_channel,omitempty"`
	SalonRappelWhitelist     string `json:"salon_rappel_whitelist,omitempty"`
	LogErreursChannel        string `json:"log_erreurs_channel,omitempty"`
	SalonBesoinDEnParler     string `json:"salon_besoin_d_en_parler,omitempty"`
	RoleBesoinDEnParler      string `json:"role_besoin_d_en_parler,omitempty"`
	RoleAide                 string `json:"role_aide,omitempty"`
	RoleMembreID             string `json:"role_membre_id,omitempty"`
	RoleNonVerifieID         string `json:"role_non_verifie_id,omitempty"`
	SortieChannel            string `json:"sortie_channel,omitempty"`
	RoleSortie               string `json:"role_sortie,omitempty"`
	RoleStaffSortie          string `json:"role_staff_sortie,omitempty"`
	JournalBurnoutChannel    string `json:"journal_burnout_channel,omitempty"`

	MessageValidation string `json:"message_validation,omitempty"`

	WeeklyRecap *RecapSpec             `json:"weekly_recap,omitempty"`
	Permissions map[string][]Principal `json:"permissions,omitempty"`
}

// ReactionRole - One emoji-to-role binding on a message
type ReactionRole struct {
	Emoji  string `json:"emoji"` // normalised key, see NormalizeEmoji
	RoleID string `json:"role_id"`
}

// AccessRequest - A pending whitelist entry
type AccessRequest struct {
	UserID      string    `json:"user_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// whitelistDoc groups the pending requests with the journal-message index
// that lets an accept/refuse reaction resolve back to the requesting user.
type whitelistDoc struct {
	Pending map[string]AccessRequest `json:"pending,omitempty"` // by user id
	Journal map[string]string        `json:"journal,omitempty"` // message id -> user id
}

// Reminder - A scheduled DM. One-shot reminders are erased after firing.
type Reminder struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	At      string `json:"hh_mm"` // "15:04" wall clock
	Message string `json:"message"`
	Daily   bool   `json:"daily"`
}

// recapState latches the weekly recap per ISO week, so a restart inside the
// scheduled minute cannot double-send.
type recapState struct {
	LastWeek string `json:"last_week,omitempty"` // e.g. "2026-W35"
}

// MoodEntry - One mood check-in
type MoodEntry struct {
	Mood string    `json:"mood"`
	At   time.Time `json:"at"`
}

// Goal - One user goal
type Goal struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}
