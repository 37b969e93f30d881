package services

import (
	"errors"
	"testing"

	"github.com/mkravets/launchpad/internal/models"
)

func TestCreateTeamMakesLeadActive(t *testing.T) {
	repos := openTestRepositories(t)
	service := NewTeamService(repos.Teams)
	lead := seedUser(t, repos, "lead@example.com", models.RoleStudent)

	team, err := service.CreateTeam(lead.ID, "  Night Owls  ", "We ship at 2am.", []string{"Go", "go", "React"})
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	if team.Name != "Night Owls" {
		t.Fatalf("expected trimmed name, got %q", team.Name)
	}
	if len(team.Skills) != 2 {
		t.Fatalf("expected de-duplicated skills, got %v", team.Skills)
	}

	loaded, err := service.GetTeam(team.ID)
	if err != nil {
		t.Fatalf("load team: %v", err)
	}
	if len(loaded.Members) != 1 {
		t.Fatalf("expected lead membership, got %d members", len(loaded.Members))
	}
	member := loaded.Members[0]
	if member.UserID != lead.ID || member.Role != models.TeamMemberRoleLead || member.Status != models.TeamMemberStatusActive {
		t.Fatalf("unexpected lead membership: %+v", member)
	}
}

func TestCreateTeamRejectsBlankName(t *testing.T) {
	repos := openTestRepositories(t)
	service := NewTeamService(repos.Teams)

	if _, err := service.CreateTeam(1, "   ", "", nil); !errors.Is(err, ErrInvalidTeamName) {
		t.Fatalf("expected ErrInvalidTeamName, got %v", err)
	}
}

func TestJoinAndApproveFlow(t *testing.T) {
	repos := openTestRepositories(t)
	service := NewTeamService(repos.Teams)
	lead := seedUser(t, repos, "lead@example.com", models.RoleStudent)
	joiner := seedUser(t, repos, "joiner@example.com", models.RoleStudent)
	outsider := seedUser(t, repos, "outsider@example.com", models.RoleStudent)

	team, err := service.CreateTeam(lead.ID, "Night Owls", "", nil)
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}

	member, err := service.RequestToJoin(team.ID, joiner.ID)
	if err != nil {
		t.Fatalf("join request failed: %v", err)
	}
	if member.Status != models.TeamMemberStatusPending {
		t.Fatalf("expected pending membership, got %q", member.Status)
	}
	if _, err := service.RequestToJoin(team.ID, joiner.ID); !errors.Is(err, ErrAlreadyTeamMember) {
		t.Fatalf("expected ErrAlreadyTeamMember, got %v", err)
	}

	if err := service.ApproveMember(team.ID, outsider.ID, joiner.ID); !errors.Is(err, ErrNotTeamLead) {
		t.Fatalf("expected only the lead to approve, got %v", err)
	}
	if err := service.ApproveMember(team.ID, lead.ID, joiner.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	loaded, err := service.GetTeam(team.ID)
	if err != nil {
		t.Fatalf("load team: %v", err)
	}
	for _, m := range loaded.Members {
		if m.UserID == joiner.ID && m.Status != models.TeamMemberStatusActive {
			t.Fatalf("expected approved member to be active, got %q", m.Status)
		}
	}
}

func TestRemoveMemberRules(t *testing.T) {
	repos := openTestRepositories(t)
	service := NewTeamService(repos.Teams)
	lead := seedUser(t, repos, "lead@example.com", models.RoleStudent)
	member := seedUser(t, repos, "member@example.com", models.RoleStudent)

	team, err := service.CreateTeam(lead.ID, "Night Owls", "", nil)
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	if _, err := service.RequestToJoin(team.ID, member.ID); err != nil {
		t.Fatalf("join request failed: %v", err)
	}

	// The lead cannot be removed, not even by themselves.
	if err := service.RemoveMember(team.ID, lead.ID, lead.ID); !errors.Is(err, ErrNotTeamLead) {
		t.Fatalf("expected lead removal to be rejected, got %v", err)
	}

	// A member may leave on their own.
	if err := service.RemoveMember(team.ID, member.ID, member.ID); err != nil {
		t.Fatalf("self-removal failed: %v", err)
	}
	if err := service.RemoveMember(team.ID, lead.ID, member.ID); !errors.Is(err, ErrTeamMemberNotFound) {
		t.Fatalf("expected ErrTeamMemberNotFound after leaving, got %v", err)
	}
}

func TestUpdateAndDeleteTeamLeadOnly(t *testing.T) {
	repos := openTestRepositories(t)
	service := NewTeamService(repos.Teams)
	lead := seedUser(t, repos, "lead@example.com", models.RoleStudent)
	outsider := seedUser(t, repos, "outsider@example.com", models.RoleStudent)

	team, err := service.CreateTeam(lead.ID, "Night Owls", "", nil)
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}

	if _, err := service.UpdateTeam(team.ID, outsider.ID, "Day Owls", "", nil); !errors.Is(err, ErrNotTeamLead) {
		t.Fatalf("expected ErrNotTeamLead on update, got %v", err)
	}
	updated, err := service.UpdateTeam(team.ID, lead.ID, "Day Owls", "New plan.", nil)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Day Owls" {
		t.Fatalf("expected renamed team, got %q", updated.Name)
	}

	if err := service.DeleteTeam(team.ID, outsider.ID); !errors.Is(err, ErrNotTeamLead) {
		t.Fatalf("expected ErrNotTeamLead on delete, got %v", err)
	}
	if err := service.DeleteTeam(team.ID, lead.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := service.GetTeam(team.ID); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound after delete, got %v", err)
	}
}
