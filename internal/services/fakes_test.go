package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/models"
)

// In-memory store fakes. They mirror the GORM implementations' contract:
// gorm.ErrRecordNotFound for absent rows, gorm.ErrDuplicatedKey for
// unique-index violations, newest-first ordering.

type fakeUserStore struct {
	users map[uuid.UUID]models.User
	seq   int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *fakeUserStore) nextCreatedAt() time.Time {
	s.seq++
	return time.Unix(int64(1700000000+s.seq), 0)
}

func (s *fakeUserStore) Create(u *models.User) error {
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = s.nextCreatedAt()
	s.users[u.ID] = *u
	return nil
}

func (s *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := u
	return &found, nil
}

func (s *fakeUserStore) Save(u *models.User) error {
	if _, ok := s.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.users[u.ID] = *u
	return nil
}

func (s *fakeUserStore) Delete(id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) ListPendingEmployers() ([]models.User, error) {
	out := []models.User{}
	for _, u := range s.users {
		if u.Role == models.RoleEmployer && !u.IsApproved {
			out = append(out, u)
		}
	}
	sortUsersNewestFirst(out)
	return out, nil
}

func (s *fakeUserStore) ListAll() ([]models.User, error) {
	out := []models.User{}
	for _, u := range s.users {
		out = append(out, u)
	}
	sortUsersNewestFirst(out)
	return out, nil
}

func sortUsersNewestFirst(users []models.User) {
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
}

type fakeJobStore struct {
	jobs map[uuid.UUID]models.Job
	seq  int
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[uuid.UUID]models.Job)}
}

func (s *fakeJobStore) Create(j *models.Job) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	s.seq++
	j.CreatedAt = time.Unix(int64(1700000000+s.seq), 0)
	s.jobs[j.ID] = *j
	return nil
}

func (s *fakeJobStore) FindByID(id uuid.UUID) (*models.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := j
	return &found, nil
}

func (s *fakeJobStore) FindOwned(id, employerID uuid.UUID) (*models.Job, error) {
	j, ok := s.jobs[id]
	if !ok || j.PostedByID != employerID {
		return nil, gorm.ErrRecordNotFound
	}
	found := j
	return &found, nil
}

func (s *fakeJobStore) Save(j *models.Job) error {
	if _, ok := s.jobs[j.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.jobs[j.ID] = *j
	return nil
}

func (s *fakeJobStore) DeleteOwned(id, employerID uuid.UUID) (bool, error) {
	j, ok := s.jobs[id]
	if !ok || j.PostedByID != employerID {
		return false, nil
	}
	delete(s.jobs, id)
	return true, nil
}

func (s *fakeJobStore) ListByEmployer(employerID uuid.UUID) ([]models.Job, error) {
	out := []models.Job{}
	for _, j := range s.jobs {
		if j.PostedByID == employerID {
			out = append(out, j)
		}
	}
	sortJobsNewestFirst(out)
	return out, nil
}

func (s *fakeJobStore) List(f dto.JobFilter) ([]models.Job, error) {
	out := []models.Job{}
	for _, j := range s.jobs {
		if f.Location != "" && !containsFold(j.Location, f.Location) {
			continue
		}
		if f.JobType != "" && j.JobType != f.JobType {
			continue
		}
		out = append(out, j)
	}
	sortJobsNewestFirst(out)
	return out, nil
}

func sortJobsNewestFirst(jobs []models.Job) {
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
}

type fakeApplicationStore struct {
	apps map[uuid.UUID]models.Application
	jobs *fakeJobStore
	seq  int

	// skipExistsCheck makes Exists report false regardless of state, to
	// exercise the unique-index fallback path.
	skipExistsCheck bool
}

func newFakeApplicationStore(jobs *fakeJobStore) *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[uuid.UUID]models.Application), jobs: jobs}
}

func (s *fakeApplicationStore) Create(a *models.Application) error {
	for _, existing := range s.apps {
		if existing.JobID == a.JobID && existing.UserID == a.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.seq++
	a.CreatedAt = time.Unix(int64(1700000000+s.seq), 0)
	s.apps[a.ID] = *a
	return nil
}

func (s *fakeApplicationStore) Exists(jobID, userID uuid.UUID) (bool, error) {
	if s.skipExistsCheck {
		return false, nil
	}
	for _, a := range s.apps {
		if a.JobID == jobID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeApplicationStore) ListByUser(userID uuid.UUID) ([]models.Application, error) {
	out := []models.Application{}
	for _, a := range s.apps {
		if a.UserID != userID {
			continue
		}
		// mirror Preload: a deleted job leaves the association nil
		if job, ok := s.jobs.jobs[a.JobID]; ok {
			j := job
			a.Job = &j
		}
		out = append(out, a)
	}
	sortAppsNewestFirst(out)
	return out, nil
}

func (s *fakeApplicationStore) ListByJob(jobID uuid.UUID) ([]models.Application, error) {
	out := []models.Application{}
	for _, a := range s.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	sortAppsNewestFirst(out)
	return out, nil
}

func (s *fakeApplicationStore) ListAll() ([]models.Application, error) {
	out := []models.Application{}
	for _, a := range s.apps {
		if job, ok := s.jobs.jobs[a.JobID]; ok {
			j := job
			a.Job = &j
		}
		out = append(out, a)
	}
	sortAppsNewestFirst(out)
	return out, nil
}

func sortAppsNewestFirst(apps []models.Application) {
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
