package services

import (
	"context"
	"sort"
	"time"

	"github.com/ozanc/mentorhub/internal/app/models"
	"github.com/ozanc/mentorhub/internal/app/repositories"
	"github.com/ozanc/mentorhub/internal/pkg/apperrors"
)

// In-memory fakes implementing the store interfaces. They mirror the
// repository semantics the services rely on: uniqueness violations,
// not-found sentinels, and the deletion guards.

type fakeStores struct {
	admins   *fakeAdminStore
	students *fakeStudentStore
	mentors  *fakeMentorStore
	projects *fakeProjectStore
	messages *fakeMessageStore
}

func newFakeStores() *fakeStores {
	s := &fakeStores{
		admins:   &fakeAdminStore{admins: map[string]*models.Admin{}},
		students: &fakeStudentStore{students: map[int64]*models.Student{}},
		mentors:  &fakeMentorStore{mentors: map[int64]*models.Mentor{}},
		projects: &fakeProjectStore{projects: map[int64]*models.Project{}},
		messages: &fakeMessageStore{messages: map[int64]*models.Message{}},
	}
	s.students.projects = s.projects
	s.students.mentors = s.mentors
	s.mentors.students = s.students
	s.mentors.projects = s.projects
	s.projects.students = s.students
	s.projects.mentors = s.mentors
	return s
}

type fakeAdminStore struct {
	admins map[string]*models.Admin
	nextID int64
}

func (f *fakeAdminStore) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminStore) add(username, passwordHash string) *models.Admin {
	f.nextID++
	admin := &models.Admin{ID: f.nextID, Username: username, Password: passwordHash}
	f.admins[username] = admin
	return admin
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
	mentors  *fakeMentorStore
	projects *fakeProjectStore
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, existing := range f.students {
		if existing.PRN == student.PRN {
			return apperrors.ErrPRNAlreadyExists
		}
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	student.ID = f.nextID
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, student := range f.students {
		if student.Email == email {
			copied := *student
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.students))
	for _, student := range f.students {
		copied := *student
		if copied.MentorID != nil {
			if mentor, ok := f.mentors.mentors[*copied.MentorID]; ok {
				mentorCopy := *mentor
				copied.Mentor = &mentorCopy
			}
		}
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentStore) GetByMentorID(_ context.Context, mentorID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, student := range f.students {
		if student.MentorID != nil && *student.MentorID == mentorID {
			copied := *student
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	student, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Password = passwordHash
	return nil
}

func (f *fakeStudentStore) UpdateGithubLink(_ context.Context, id int64, githubLink string) error {
	student, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.GithubLink = &githubLink
	return nil
}

func (f *fakeStudentStore) SetMentor(_ context.Context, studentID, mentorID int64) error {
	student, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.MentorID = &mentorID
	return nil
}

func (f *fakeStudentStore) DeleteCascade(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	for _, project := range f.projects.projects {
		if project.StudentID == id && project.Status == models.StatusApproved {
			return apperrors.ErrStudentHasApprovedProjects
		}
	}
	for pid, project := range f.projects.projects {
		if project.StudentID == id {
			delete(f.projects.projects, pid)
		}
	}
	delete(f.students, id)
	return nil
}

type fakeMentorStore struct {
	mentors  map[int64]*models.Mentor
	nextID   int64
	students *fakeStudentStore
	projects *fakeProjectStore
}

func (f *fakeMentorStore) Create(_ context.Context, mentor *models.Mentor) error {
	for _, existing := range f.mentors {
		if existing.Email == mentor.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	mentor.ID = f.nextID
	copied := *mentor
	f.mentors[mentor.ID] = &copied
	return nil
}

func (f *fakeMentorStore) GetByID(_ context.Context, id int64) (*models.Mentor, error) {
	mentor, ok := f.mentors[id]
	if !ok {
		return nil, apperrors.ErrMentorNotFound
	}
	copied := *mentor
	return &copied, nil
}

func (f *fakeMentorStore) GetByEmail(_ context.Context, email string) (*models.Mentor, error) {
	for _, mentor := range f.mentors {
		if mentor.Email == email {
			copied := *mentor
			return &copied, nil
		}
	}
	return nil, apperrors.ErrMentorNotFound
}

func (f *fakeMentorStore) GetAll(_ context.Context) ([]*models.Mentor, error) {
	out := make([]*models.Mentor, 0, len(f.mentors))
	for _, mentor := range f.mentors {
		copied := *mentor
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMentorStore) Update(_ context.Context, mentor *models.Mentor) error {
	if _, ok := f.mentors[mentor.ID]; !ok {
		return apperrors.ErrMentorNotFound
	}
	copied := *mentor
	f.mentors[mentor.ID] = &copied
	return nil
}

func (f *fakeMentorStore) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	mentor, ok := f.mentors[id]
	if !ok {
		return apperrors.ErrMentorNotFound
	}
	mentor.Password = passwordHash
	return nil
}

func (f *fakeMentorStore) DeleteCascade(_ context.Context, id int64) error {
	if _, ok := f.mentors[id]; !ok {
		return apperrors.ErrMentorNotFound
	}
	for pid, project := range f.projects.projects {
		if project.MentorID != nil && *project.MentorID == id {
			delete(f.projects.projects, pid)
		}
	}
	for _, student := range f.students.students {
		if student.MentorID != nil && *student.MentorID == id {
			student.MentorID = nil
		}
	}
	delete(f.mentors, id)
	return nil
}

type fakeProjectStore struct {
	projects map[int64]*models.Project
	nextID   int64
	students *fakeStudentStore
	mentors  *fakeMentorStore
}

func (f *fakeProjectStore) Create(_ context.Context, project *models.Project) error {
	f.nextID++
	project.ID = f.nextID
	project.SubmissionDate = time.Now()
	copied := *project
	f.projects[project.ID] = &copied
	return nil
}

func (f *fakeProjectStore) ExistsByPublicID(_ context.Context, publicID string) (bool, error) {
	for _, project := range f.projects {
		if project.PublicID == publicID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjectStore) GetByID(_ context.Context, id int64) (*models.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	copied := *project
	return &copied, nil
}

func (f *fakeProjectStore) UpdateReview(_ context.Context, project *models.Project) error {
	stored, ok := f.projects[project.ID]
	if !ok {
		return apperrors.ErrProjectNotFound
	}
	now := time.Now()
	stored.Status = project.Status
	stored.ProgressPercentage = project.ProgressPercentage
	stored.MentorFeedback = project.MentorFeedback
	stored.LastUpdated = &now
	return nil
}

func (f *fakeProjectStore) UpdateDetails(_ context.Context, project *models.Project) error {
	stored, ok := f.projects[project.ID]
	if !ok {
		return apperrors.ErrProjectNotFound
	}
	now := time.Now()
	stored.Title = project.Title
	stored.Description = project.Description
	stored.GithubLink = project.GithubLink
	stored.LastUpdated = &now
	return nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id int64) error {
	project, ok := f.projects[id]
	if !ok {
		return apperrors.ErrProjectNotFound
	}
	if project.Status == models.StatusApproved {
		return apperrors.ErrProjectApproved
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectStore) withNames(project *models.Project) *repositories.ProjectWithNames {
	row := &repositories.ProjectWithNames{Project: *project}
	if student, ok := f.students.students[project.StudentID]; ok {
		row.StudentName = student.Name
	}
	if project.MentorID != nil {
		if mentor, ok := f.mentors.mentors[*project.MentorID]; ok {
			row.MentorName = &mentor.Name
		}
	}
	return row
}

func (f *fakeProjectStore) ListAll(_ context.Context) ([]*repositories.ProjectWithNames, error) {
	out := make([]*repositories.ProjectWithNames, 0, len(f.projects))
	for _, project := range f.projects {
		out = append(out, f.withNames(project))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProjectStore) ListByMentor(_ context.Context, mentorID int64) ([]*repositories.ProjectWithNames, error) {
	var out []*repositories.ProjectWithNames
	for _, project := range f.projects {
		if project.MentorID != nil && *project.MentorID == mentorID {
			out = append(out, f.withNames(project))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProjectStore) ListByStudent(_ context.Context, studentID int64) ([]*repositories.ProjectWithNames, error) {
	var out []*repositories.ProjectWithNames
	for _, project := range f.projects {
		if project.StudentID == studentID {
			out = append(out, f.withNames(project))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProjectStore) GetDetail(_ context.Context, id int64) (*repositories.ProjectWithNames, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, apperrors.ErrProjectNotFound
	}
	return f.withNames(project), nil
}

type fakeMessageStore struct {
	messages map[int64]*models.Message
	nextID   int64
}

func (f *fakeMessageStore) Create(_ context.Context, message *models.Message) error {
	f.nextID++
	message.ID = f.nextID
	message.SentAt = time.Now()
	copied := *message
	f.messages[message.ID] = &copied
	return nil
}

func (f *fakeMessageStore) GetByProjectID(_ context.Context, projectID int64) ([]*models.Message, error) {
	var out []*models.Message
	for _, message := range f.messages {
		if message.ProjectID == projectID {
			copied := *message
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
