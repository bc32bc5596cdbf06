package services

import (
	"context"

	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/app/repositories"
)

// Store interfaces describe the repository surface each service consumes.
// The concrete pgx repositories satisfy them; tests substitute in-memory fakes.

type adminStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByMentorID(ctx context.Context, mentorID int64) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateGithubLink(ctx context.Context, id int64, githubLink string) error
	SetMentor(ctx context.Context, studentID, mentorID int64) error
	DeleteCascade(ctx context.Context, id int64) error
}

type mentorStore interface {
	Create(ctx context.Context, mentor *models.Mentor) error
	GetByID(ctx context.Context, id int64) (*models.Mentor, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentor, error)
	GetAll(ctx context.Context) ([]*models.Mentor, error)
	Update(ctx context.Context, mentor *models.Mentor) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	DeleteCascade(ctx context.Context, id int64) error
}

type projectStore interface {
	Create(ctx context.Context, project *models.Project) error
	ExistsByPublicID(ctx context.Context, publicID string) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	UpdateReview(ctx context.Context, project *models.Project) error
	UpdateDetails(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]*repositories.ProjectWithNames, error)
	ListByMentor(ctx context.Context, mentorID int64) ([]*repositories.ProjectWithNames, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*repositories.ProjectWithNames, error)
	GetDetail(ctx context.Context, id int64) (*repositories.ProjectWithNames, error)
}

type messageStore interface {
	Create(ctx context.Context, message *models.Message) error
	GetByProjectID(ctx context.Context, projectID int64) ([]*models.Message, error)
}
