package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Profiles      *ProfileRepository
	Colleges      *CollegeRepository
	Verifications *VerificationRepository
	Projects      *ProjectRepository
	Teams         *TeamRepository
	Applications  *ApplicationRepository
	Milestones    *MilestoneRepository
	Messages      *MessageRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Profiles:      NewProfileRepository(database),
		Colleges:      NewCollegeRepository(database),
		Verifications: NewVerificationRepository(database),
		Projects:      NewProjectRepository(database),
		Teams:         NewTeamRepository(database),
		Applications:  NewApplicationRepository(database),
		Milestones:    NewMilestoneRepository(database),
		Messages:      NewMessageRepository(database),
	}
}
