package handlers

import (
	"testing"

	"github.com/mbriand/atelier-bot/database"
)

func TestDecide(t *testing.T) {
	rolePerso := database.Principal{Kind: database.PrincipalRole, ID: "r-perso"}
	memberAlice := database.Principal{Kind: database.PrincipalMember, ID: "alice"}

	tests := []struct {
		name string
		req  GateRequest
		want Verdict
	}{
		{
			name: "open command anywhere",
			req:  GateRequest{UserID: "alice", ChannelID: "101"},
			want: Admit,
		},
		{
			name: "admin only denies regular member",
			req:  GateRequest{AdminOnly: true, UserID: "alice"},
			want: DenyPrincipal,
		},
		{
			name: "admin only admits admin",
			req:  GateRequest{AdminOnly: true, IsAdmin: true, UserID: "alice"},
			want: Admit,
		},
		{
			name: "verified only requires member role",
			req:  GateRequest{VerifiedOnly: true, UserID: "alice", RoleIDs: []string{"other"}, MemberRoleID: "r-membre"},
			want: DenyPrincipal,
		},
		{
			name: "verified only admits member",
			req:  GateRequest{VerifiedOnly: true, UserID: "alice", RoleIDs: []string{"r-membre"}, MemberRoleID: "r-membre"},
			want: Admit,
		},
		{
			name: "membership predicate re-asserted for admins",
			req:  GateRequest{UnverifiedOnly: true, IsAdmin: true, UserID: "alice", RoleIDs: []string{"r-membre"}, NonVerifiedRoleID: "r-nonverif"},
			want: DenyPrincipal,
		},
		{
			name: "empty acl allows everyone",
			req:  GateRequest{UserID: "alice", RoleIDs: []string{"other"}},
			want: Admit,
		},
		{
			name: "acl denies unlisted invoker",
			req:  GateRequest{UserID: "bob", RoleIDs: []string{"other"}, ACL: []database.Principal{rolePerso, memberAlice}},
			want: DenyACL,
		},
		{
			name: "acl admits listed member",
			req:  GateRequest{UserID: "alice", ACL: []database.Principal{rolePerso, memberAlice}},
			want: Admit,
		},
		{
			name: "acl admits by role",
			req:  GateRequest{UserID: "bob", RoleIDs: []string{"r-perso"}, ACL: []database.Principal{rolePerso}},
			want: Admit,
		},
		{
			name: "admin bypasses acl",
			req:  GateRequest{IsAdmin: true, UserID: "bob", ACL: []database.Principal{memberAlice}},
			want: Admit,
		},
		{
			name: "wrong channel denies non-admin",
			req:  GateRequest{UserID: "alice", ChannelID: "101", BoundChannel: "100"},
			want: DenyChannel,
		},
		{
			name: "bound channel admits in place",
			req:  GateRequest{UserID: "alice", ChannelID: "100", BoundChannel: "100"},
			want: Admit,
		},
		{
			name: "wrong channel overrides for admin",
			req:  GateRequest{IsAdmin: true, UserID: "alice", ChannelID: "101", BoundChannel: "100"},
			want: AdmitOverride,
		},
		{
			name: "acl applies before channel",
			req:  GateRequest{UserID: "bob", ChannelID: "100", BoundChannel: "100", ACL: []database.Principal{memberAlice}},
			want: DenyACL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.req); got != tt.want {
				t.Errorf("Decide = %v, want %v", got, tt.want)
			}
		})
	}
}

// admitted(c, ch, u) = admin(u) ∨ (acl(c, u) ∧ allowed_channel(c) ∈ {unset, ch})
// for commands without a membership predicate.
func TestDecideAdmissionEquation(t *testing.T) {
	acl := []database.Principal{{Kind: database.PrincipalMember, ID: "alice"}}

	for _, isAdmin := range []bool{false, true} {
		for _, listed := range []bool{false, true} {
			for _, boundElsewhere := range []bool{false, true} {
				userID := "bob"
				if listed {
					userID = "alice"
				}
				bound := ""
				if boundElsewhere {
					bound = "other-channel"
				}
				got := Decide(GateRequest{
					IsAdmin:      isAdmin,
					UserID:       userID,
					ChannelID:    "here",
					BoundChannel: bound,
					ACL:          acl,
				})
				admitted := got == Admit || got == AdmitOverride
				want := isAdmin || (listed && !boundElsewhere)
				if admitted != want {
					t.Errorf("admin=%v listed=%v boundElsewhere=%v: admitted=%v, want %v",
						isAdmin, listed, boundElsewhere, admitted, want)
				}
			}
		}
	}
}

func TestSplitFlags(t *testing.T) {
	adminOnly, verifiedOnly, unverifiedOnly, categories := splitFlags([]string{"admin", "config"})
	if !adminOnly || verifiedOnly || unverifiedOnly {
		t.Errorf("predicates = %v %v %v", adminOnly, verifiedOnly, unverifiedOnly)
	}
	if len(categories) != 1 || categories[0] != "config" {
		t.Errorf("categories = %v", categories)
	}

	_, verifiedOnly, _, categories = splitFlags([]string{"verified", "perso"})
	if !verifiedOnly {
		t.Error("verified flag not detected")
	}
	if len(categories) != 1 || categories[0] != "perso" {
		t.Errorf("categories = %v", categories)
	}
}
