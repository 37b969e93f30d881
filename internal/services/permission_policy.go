package services

import "github.com/mkravets/launchpad/internal/models"

// Permission is an atomic capability checked against a role's allow-set.
type Permission string

const (
	PermissionCreateProject          Permission = "create_project"
	PermissionEditProject            Permission = "edit_project"
	PermissionDeleteProject          Permission = "delete_project"
	PermissionSubmitApplication      Permission = "submit_application"
	PermissionManageApplications     Permission = "manage_applications"
	PermissionCreateTeam             Permission = "create_team"
	PermissionVerifyStudents         Permission = "verify_students"
	PermissionIssueVerificationCodes Permission = "issue_verification_codes"
	PermissionSendMessages           Permission = "send_messages"
	PermissionManageUsers            Permission = "manage_users"
)

func IsKnownPermission(permission Permission) bool {
	switch permission {
	case PermissionCreateProject,
		PermissionEditProject,
		PermissionDeleteProject,
		PermissionSubmitApplication,
		PermissionManageApplications,
		PermissionCreateTeam,
		PermissionVerifyStudents,
		PermissionIssueVerificationCodes,
		PermissionSendMessages,
		PermissionManageUsers:
		return true
	}
	return false
}

// RoleHasPermission decides access by an exhaustive match over the closed
// role and permission sets. An unknown or empty role never grants anything:
// absence of information must not grant access.
func RoleHasPermission(role string, permission Permission) bool {
	switch role {
	case models.RoleStudent:
		switch permission {
		case PermissionSubmitApplication, PermissionCreateTeam, PermissionSendMessages:
			return true
		}
	case models.RoleStartup:
		switch permission {
		case PermissionCreateProject, PermissionEditProject, PermissionDeleteProject,
			PermissionManageApplications, PermissionSendMessages:
			return true
		}
	case models.RoleCollegeAdmin:
		switch permission {
		case PermissionVerifyStudents, PermissionIssueVerificationCodes, PermissionSendMessages:
			return true
		}
	case models.RolePlatformAdmin:
		// Superset role: every known permission.
		return IsKnownPermission(permission)
	}
	return false
}

func PermissionsForRole(role string) []Permission {
	all := []Permission{
		PermissionCreateProject,
		PermissionEditProject,
		PermissionDeleteProject,
		PermissionSubmitApplication,
		PermissionManageApplications,
		PermissionCreateTeam,
		PermissionVerifyStudents,
		PermissionIssueVerificationCodes,
		PermissionSendMessages,
		PermissionManageUsers,
	}

	granted := make([]Permission, 0, len(all))
	for _, permission := range all {
		if RoleHasPermission(role, permission) {
			granted = append(granted, permission)
		}
	}
	return granted
}
