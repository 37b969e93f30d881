package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mkravets/launchpad/internal/services"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/oauth/:provider", handler.OAuthRedirect)
	auth.Get("/oauth/:provider/callback", handler.OAuthCallback)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	// Profile endpoints skip the completeness guard on purpose: they are the
	// completion flow.
	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetMyProfile)
	profile.Put("", handler.UpdateMyProfile)
	api.Get("/users/:id/profile", handler.AuthRequired, handler.GetUserProfile)

	colleges := api.Group("/colleges")
	colleges.Get("", handler.ListColleges)
	colleges.Post("", handler.AuthRequired,
		handler.RequirePermission(services.PermissionManageUsers), handler.CreateCollege)
	colleges.Get("/:id/codes", handler.AuthRequired, handler.ProfileCompleteRequired,
		handler.RequirePermission(services.PermissionIssueVerificationCodes), handler.ListVerificationCodes)

	// Verification endpoints skip the verified guard: they are how a user
	// becomes verified.
	verification := api.Group("/verification", handler.AuthRequired)
	verification.Get("/status", handler.VerificationStatus)
	verification.Post("/verify", handler.ProfileCompleteRequired, handler.VerifyCollege)
	verification.Post("/codes", handler.ProfileCompleteRequired,
		handler.RequirePermission(services.PermissionIssueVerificationCodes), handler.IssueVerificationCode)

	projects := api.Group("/projects", handler.AuthRequired, handler.ProfileCompleteRequired)
	projects.Get("", handler.ListProjects)
	projects.Get("/mine", handler.ListMyProjects)
	projects.Post("", handler.RequirePermission(services.PermissionCreateProject), handler.CreateProject)
	projects.Get("/:id", handler.GetProject)
	projects.Put("/:id", handler.RequirePermission(services.PermissionEditProject), handler.UpdateProject)
	projects.Patch("/:id/status", handler.RequirePermission(services.PermissionEditProject), handler.UpdateProjectStatus)
	projects.Delete("/:id", handler.RequirePermission(services.PermissionDeleteProject), handler.DeleteProject)
	projects.Get("/:id/applications", handler.RequirePermission(services.PermissionManageApplications), handler.ListProjectApplications)

	projects.Get("/:id/milestones", handler.ListProjectMilestones)
	projects.Post("/:id/milestones", handler.RequirePermission(services.PermissionEditProject), handler.CreateProjectMilestone)
	projects.Patch("/:id/milestones/:milestoneId/status", handler.RequirePermission(services.PermissionEditProject), handler.UpdateMilestoneStatus)
	projects.Delete("/:id/milestones/:milestoneId", handler.RequirePermission(services.PermissionEditProject), handler.DeleteMilestone)

	projects.Get("/:id/tasks", handler.ListProjectTasks)
	projects.Post("/:id/tasks", handler.RequirePermission(services.PermissionEditProject), handler.CreateProjectTask)
	projects.Patch("/:id/tasks/:taskId/status", handler.RequirePermission(services.PermissionEditProject), handler.UpdateTaskStatus)
	projects.Delete("/:id/tasks/:taskId", handler.RequirePermission(services.PermissionEditProject), handler.DeleteTask)

	teams := api.Group("/teams", handler.AuthRequired, handler.ProfileCompleteRequired)
	teams.Get("", handler.ListTeams)
	teams.Get("/mine", handler.ListMyTeams)
	teams.Post("", handler.RequirePermission(services.PermissionCreateTeam), handler.CreateTeam)
	teams.Get("/:id", handler.GetTeam)
	teams.Put("/:id", handler.UpdateTeam)
	teams.Delete("/:id", handler.DeleteTeam)
	teams.Post("/:id/join", handler.JoinTeam)
	teams.Post("/:id/members/:userId/approve", handler.ApproveTeamMember)
	teams.Delete("/:id/members/:userId", handler.RemoveTeamMember)

	applications := api.Group("/applications", handler.AuthRequired, handler.ProfileCompleteRequired)
	applications.Get("/mine", handler.ListMyApplications)
	applications.Post("", handler.VerifiedRequired,
		handler.RequirePermission(services.PermissionSubmitApplication), handler.ApplyToProject)
	applications.Patch("/:id/status", handler.RequirePermission(services.PermissionManageApplications), handler.UpdateApplicationStatus)

	messages := api.Group("/messages", handler.AuthRequired, handler.ProfileCompleteRequired,
		handler.RequirePermission(services.PermissionSendMessages))
	messages.Get("", handler.ListConversations)
	messages.Post("", handler.SendMessage)
	messages.Get("/:userId", handler.GetConversation)

	app.Use(handler.NotFound)
}
