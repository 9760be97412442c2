package handlers

import (
	"fmt"
	"runtime/debug"

	"github.com/Lukaesebrot/dgc"

	"github.com/mbriand/atelier-bot/config"
	"github.com/mbriand/atelier-bot/database"
)

// Command flags understood by the gate. Any other flag on a command is its
// category name for ACL purposes.
const (
	FlagAdmin      = "admin"
	FlagVerified   = "verified"
	FlagUnverified = "unverified"
)

// Verdict is the gate decision for one invocation.
type Verdict int

const (
	// Admit runs the handler silently.
	Admit Verdict = iota
	// AdmitOverride runs the handler but warns the admin that the channel
	// is not the configured one.
	AdmitOverride
	// DenyPrincipal rejects on the admin/verified/non-verified predicate.
	DenyPrincipal
	// DenyACL rejects on the per-command or per-category allow list.
	DenyACL
	// DenyChannel rejects a non-admin outside the bound channel.
	DenyChannel
)

func (v Verdict) String() string {
	switch v {
	case Admit:
		return "admit"
	case AdmitOverride:
		return "admit_override"
	case DenyPrincipal:
		return "principal"
	case DenyACL:
		return "acl"
	case DenyChannel:
		return "channel"
	}
	return "unknown"
}

// GateRequest carries everything the decision needs, so it can be computed
// without a Discord session.
type GateRequest struct {
	AdminOnly      bool
	VerifiedOnly   bool
	UnverifiedOnly bool

	IsAdmin bool
	UserID  string
	RoleIDs []string

	MemberRoleID      string
	NonVerifiedRoleID string

	ChannelID    string
	BoundChannel string // "" when the command is not bound to a channel

	ACL []database.Principal // merged command + category entries
}

// Decide applies the gate conjunction. Admins bypass the ACL and channel
// checks (the latter with a visible override), but membership predicates are
// re-asserted for everyone: a verified-only command still requires the
// member role, an unverified-only one the non-verified role.
func Decide(req GateRequest) Verdict {
	if req.AdminOnly && !req.IsAdmin {
		return DenyPrincipal
	}
	if req.VerifiedOnly && !hasRole(req.RoleIDs, req.MemberRoleID) {
		return DenyPrincipal
	}
	if req.UnverifiedOnly && !hasRole(req.RoleIDs, req.NonVerifiedRoleID) {
		return DenyPrincipal
	}
	if !req.IsAdmin && len(req.ACL) > 0 {
		allowed := false
		for _, p := range req.ACL {
			if p.Matches(req.UserID, req.RoleIDs) {
				allowed = true
				break
			}
		}
		if !allowed {
			return DenyACL
		}
	}
	if req.BoundChannel != "" && req.BoundChannel != req.ChannelID {
		if req.IsAdmin {
			return AdmitOverride
		}
		return DenyChannel
	}
	return Admit
}

// splitFlags separates the predicate flags from the category names.
func splitFlags(flags []string) (adminOnly, verifiedOnly, unverifiedOnly bool, categories []string) {
	for _, f := range flags {
		switch f {
		case FlagAdmin:
			adminOnly = true
		case FlagVerified:
			verifiedOnly = true
		case FlagUnverified:
			unverifiedOnly = true
		default:
			categories = append(categories, f)
		}
	}
	return adminOnly, verifiedOnly, unverifiedOnly, categories
}

// Gate is the dgc middleware running the decision before every handler.
// Denials are delivered as a single generic DM; nothing is posted in the
// channel so the command's existence is not revealed.
func (b *Bot) Gate(next dgc.ExecutionHandler) dgc.ExecutionHandler {
	return func(ctx *dgc.Ctx) {
		if ctx.Event.GuildID == "" {
			// Commands only exist inside the guild.
			return
		}
		userID := ctx.Event.Author.ID
		adminOnly, verifiedOnly, unverifiedOnly, categories := splitFlags(ctx.Command.Flags)

		roleIDs, err := b.invokerRoles(ctx)
		if err != nil {
			b.reportError(ctx.Session, "gate: member fetch", err)
			_ = b.dm(ctx.Session, userID, config.FailureMessage)
			return
		}

		cfg, err := b.Store.GuildConfig()
		if err != nil {
			b.reportError(ctx.Session, "gate: config load", err)
			_ = b.dm(ctx.Session, userID, config.FailureMessage)
			return
		}

		acl := cfg.Permissions[ctx.Command.Name]
		for _, cat := range categories {
			acl = append(acl, cfg.Permissions[cat]...)
		}

		verdict := Decide(GateRequest{
			AdminOnly:         adminOnly,
			VerifiedOnly:      verifiedOnly,
			UnverifiedOnly:    unverifiedOnly,
			IsAdmin:           b.isAdmin(ctx.Session, userID, ctx.Event.ChannelID),
			UserID:            userID,
			RoleIDs:           roleIDs,
			MemberRoleID:      b.resolveRole(ctx.Session, ctx.Event.GuildID, cfg.RoleMembreID, config.RoleMemberName),
			NonVerifiedRoleID: b.resolveRole(ctx.Session, ctx.Event.GuildID, cfg.RoleNonVerifieID, config.RoleNonVerifiedName),
			ChannelID:         ctx.Event.ChannelID,
			BoundChannel:      cfg.AllowedChannels[ctx.Command.Name],
			ACL:               acl,
		})

		switch verdict {
		case Admit:
		case AdmitOverride:
			if err := ctx.RespondText(config.ChannelOverrideNotice); err != nil {
				b.Log.Warn().Err(err).Msg("failed to send override notice")
			}
		default:
			gateDenials.WithLabelValues(verdict.String()).Inc()
			// Closed DMs drop the denial rather than leaking in-channel.
			_ = b.dm(ctx.Session, userID, config.DeniedMessage)
			return
		}

		commandsRun.WithLabelValues(ctx.Command.Name).Inc()
		next(ctx)
	}
}

// Recover is the outermost middleware: a panicking handler becomes a logged
// stack plus a generic failure reply, never an exception to the SDK.
func (b *Bot) Recover(next dgc.ExecutionHandler) dgc.ExecutionHandler {
	return func(ctx *dgc.Ctx) {
		defer func() {
			if r := recover(); r != nil {
				handlerPanics.Inc()
				b.Log.Error().
					Str("command", ctx.Command.Name).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("handler panic recovered")
				b.reportError(ctx.Session, "panic in "+ctx.Command.Name, fmt.Errorf("%v", r))
				_ = ctx.RespondText(config.FailureMessage)
			}
		}()
		next(ctx)
	}
}

// invokerRoles prefers the member object delivered with the message and
// falls back to an explicit fetch.
func (b *Bot) invokerRoles(ctx *dgc.Ctx) ([]string, error) {
	if ctx.Event.Member != nil {
		return ctx.Event.Member.Roles, nil
	}
	return b.memberRoles(ctx.Session, ctx.Event.GuildID, ctx.Event.Author.ID)
}
