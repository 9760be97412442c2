package scheduler

import (
	"fmt"
	"strings"
	"time"
)

// tickWhitelistNudge re-announces the unresolved access requests in the
// configured reminder channel so they never sit forgotten.
func (sc *Scheduler) tickWhitelistNudge(now time.Time) error {
	pending, err := sc.Store.PendingAccessRequests()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}
	cfg, err := sc.Store.GuildConfig()
	if err != nil {
		return err
	}
	if cfg.SalonRappelWhitelist == "" {
		sc.Log.Debug().Int("pending", len(pending)).Msg("no whitelist reminder channel configured")
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔔 %d demande(s) d'accès en attente :\n", len(pending))
	for _, req := range pending {
		age := now.Sub(req.SubmittedAt).Round(time.Minute)
		fmt.Fprintf(&sb, "• <@%s> — depuis %s\n", req.UserID, age)
	}
	_, err = sc.Session.ChannelMessageSend(cfg.SalonRappelWhitelist, sb.String())
	return err
}
