package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobportal/jobportal-backend/internal/config"
	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/handlers"
	"github.com/jobportal/jobportal-backend/internal/models"
	"github.com/jobportal/jobportal-backend/internal/routes"
	"github.com/jobportal/jobportal-backend/internal/services"
)

// The full HTTP surface wired against in-memory stores, exercising the
// same routing, gate and error mapping as production.

type memUserStore struct {
	users map[uuid.UUID]models.User
}

func (s *memUserStore) Create(u *models.User) error {
	for _, e := range s.users {
		if e.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	s.users[u.ID] = *u
	return nil
}

func (s *memUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := u
	return &found, nil
}

func (s *memUserStore) Save(u *models.User) error {
	s.users[u.ID] = *u
	return nil
}

func (s *memUserStore) Delete(id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

func (s *memUserStore) ListPendingEmployers() ([]models.User, error) {
	out := []models.User{}
	for _, u := range s.users {
		if u.Role == models.RoleEmployer && !u.IsApproved {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *memUserStore) ListAll() ([]models.User, error) {
	out := []models.User{}
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

type memJobStore struct {
	jobs map[uuid.UUID]models.Job
}

func (s *memJobStore) Create(j *models.Job) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	j.CreatedAt = time.Now()
	s.jobs[j.ID] = *j
	return nil
}

func (s *memJobStore) FindByID(id uuid.UUID) (*models.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := j
	return &found, nil
}

func (s *memJobStore) FindOwned(id, employerID uuid.UUID) (*models.Job, error) {
	j, ok := s.jobs[id]
	if !ok || j.PostedByID != employerID {
		return nil, gorm.ErrRecordNotFound
	}
	found := j
	return &found, nil
}

func (s *memJobStore) Save(j *models.Job) error {
	s.jobs[j.ID] = *j
	return nil
}

func (s *memJobStore) DeleteOwned(id, employerID uuid.UUID) (bool, error) {
	j, ok := s.jobs[id]
	if !ok || j.PostedByID != employerID {
		return false, nil
	}
	delete(s.jobs, id)
	return true, nil
}

func (s *memJobStore) ListByEmployer(employerID uuid.UUID) ([]models.Job, error) {
	out := []models.Job{}
	for _, j := range s.jobs {
		if j.PostedByID == employerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (s *memJobStore) List(f dto.JobFilter) ([]models.Job, error) {
	out := []models.Job{}
	for _, j := range s.jobs {
		out = append(out, j)
	}
	return out, nil
}

type memAppStore struct {
	apps map[uuid.UUID]models.Application
	jobs *memJobStore
}

func (s *memAppStore) Create(a *models.Application) error {
	for _, e := range s.apps {
		if e.JobID == a.JobID && e.UserID == a.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	s.apps[a.ID] = *a
	return nil
}

func (s *memAppStore) Exists(jobID, userID uuid.UUID) (bool, error) {
	for _, a := range s.apps {
		if a.JobID == jobID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memAppStore) ListByUser(userID uuid.UUID) ([]models.Application, error) {
	out := []models.Application{}
	for _, a := range s.apps {
		if a.UserID != userID {
			continue
		}
		if j, ok := s.jobs.jobs[a.JobID]; ok {
			job := j
			a.Job = &job
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *memAppStore) ListByJob(jobID uuid.UUID) ([]models.Application, error) {
	out := []models.Application{}
	for _, a := range s.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *memAppStore) ListAll() ([]models.Application, error) {
	out := []models.Application{}
	for _, a := range s.apps {
		out = append(out, a)
	}
	return out, nil
}

type testAPI struct {
	app   *fiber.App
	users *memUserStore
	jobs  *memJobStore
	apps  *memAppStore
}

func newTestAPI() *testAPI {
	users := &memUserStore{users: make(map[uuid.UUID]models.User)}
	jobs := &memJobStore{jobs: make(map[uuid.UUID]models.Job)}
	apps := &memAppStore{apps: make(map[uuid.UUID]models.Application), jobs: jobs}

	cfg := &config.Config{JWTSecret: "test-secret-with-enough-entropy!", JWTExpiry: 720 * time.Hour}

	authService := services.NewAuthService(users, cfg)
	seekerService := services.NewSeekerService(users, jobs, apps)
	employerService := services.NewEmployerService(jobs, apps)
	adminService := services.NewAdminService(users, jobs, apps)

	app := fiber.New()
	routes.Setup(app, cfg, users,
		handlers.NewAuthHandler(authService),
		handlers.NewSeekerHandler(seekerService),
		handlers.NewEmployerHandler(employerService),
		handlers.NewAdminHandler(adminService),
		handlers.NewHealthHandler(),
	)
	return &testAPI{app: app, users: users, jobs: jobs, apps: apps}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]json.RawMessage) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	var parsed map[string]json.RawMessage
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	return resp.StatusCode, parsed
}

func message(t *testing.T, body map[string]json.RawMessage) string {
	t.Helper()
	var msg string
	_ = json.Unmarshal(body["message"], &msg)
	return msg
}

func (a *testAPI) register(t *testing.T, name, email string, role models.Role) (uuid.UUID, string) {
	t.Helper()
	status, body := a.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "secret123", "role": string(role),
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s: status %d (%s)", email, status, message(t, body))
	}
	var id uuid.UUID
	if err := json.Unmarshal(body["id"], &id); err != nil {
		t.Fatalf("register %s: no id in response", email)
	}
	var token string
	_ = json.Unmarshal(body["token"], &token)
	return id, token
}

func (a *testAPI) approveEmployer(t *testing.T, id uuid.UUID) {
	t.Helper()
	u, err := a.users.FindByID(id)
	if err != nil {
		t.Fatal(err)
	}
	u.IsApproved = true
	if err := a.users.Save(u); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	api := newTestAPI()
	api.register(t, "Ada", "ada@x.com", models.RoleJobSeeker)

	status, body := api.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ada Again", "email": "ada@x.com", "password": "secret123",
	})
	if status != http.StatusConflict || message(t, body) != "User already exists with this email" {
		t.Errorf("got %d %q", status, message(t, body))
	}
}

func TestUnapprovedEmployerLoginAndGate(t *testing.T) {
	api := newTestAPI()
	_, token := api.register(t, "HR", "hr@acme.com", models.RoleEmployer)

	status, body := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "hr@acme.com", "password": "secret123",
	})
	if status != http.StatusForbidden || message(t, body) != "Your employer account is pending admin approval." {
		t.Errorf("login got %d %q", status, message(t, body))
	}

	// The registration token exists but the approval gate still holds.
	status, body = api.do(t, http.MethodGet, "/api/employer/jobs", token, nil)
	if status != http.StatusForbidden || message(t, body) != "Your employer account is pending admin approval." {
		t.Errorf("gate got %d %q", status, message(t, body))
	}
}

func TestApplyTwiceOverHTTP(t *testing.T) {
	api := newTestAPI()
	employerID, employerToken := api.register(t, "HR", "hr@acme.com", models.RoleEmployer)
	api.approveEmployer(t, employerID)
	_, seekerToken := api.register(t, "Ada", "ada@x.com", models.RoleJobSeeker)

	status, body := api.do(t, http.MethodPost, "/api/employer/jobs", employerToken, map[string]string{
		"title": "Backend Engineer", "company": "Acme", "location": "Berlin",
		"jobType": "full-time", "description": "Build things",
	})
	if status != http.StatusCreated {
		t.Fatalf("create job: status %d (%s)", status, message(t, body))
	}
	var jobID uuid.UUID
	if err := json.Unmarshal(body["id"], &jobID); err != nil {
		t.Fatal("create job: no id in response")
	}

	status, _ = api.do(t, http.MethodPost, "/api/seeker/apply", seekerToken, map[string]string{"jobId": jobID.String()})
	if status != http.StatusCreated {
		t.Fatalf("first apply: status %d", status)
	}

	status, body = api.do(t, http.MethodPost, "/api/seeker/apply", seekerToken, map[string]string{"jobId": jobID.String()})
	if status != http.StatusBadRequest || message(t, body) != "You have already applied to this job" {
		t.Errorf("second apply got %d %q", status, message(t, body))
	}
}

func TestEmployerCrossOwnershipReadsAsNotFound(t *testing.T) {
	api := newTestAPI()
	e1, token1 := api.register(t, "HR1", "hr1@acme.com", models.RoleEmployer)
	e2, token2 := api.register(t, "HR2", "hr2@globex.com", models.RoleEmployer)
	api.approveEmployer(t, e1)
	api.approveEmployer(t, e2)

	status, body := api.do(t, http.MethodPost, "/api/employer/jobs", token1, map[string]string{
		"title": "Backend Engineer", "company": "Acme", "location": "Berlin",
		"jobType": "full-time", "description": "Build things",
	})
	if status != http.StatusCreated {
		t.Fatalf("create job: status %d", status)
	}
	var jobID uuid.UUID
	_ = json.Unmarshal(body["id"], &jobID)

	status, body = api.do(t, http.MethodGet, "/api/employer/jobs/"+jobID.String(), token2, nil)
	if status != http.StatusNotFound || message(t, body) != "Job not found" {
		t.Errorf("got %d %q, want 404 Job not found", status, message(t, body))
	}
}

func TestRoleMismatchOnGroups(t *testing.T) {
	api := newTestAPI()
	_, seekerToken := api.register(t, "Ada", "ada@x.com", models.RoleJobSeeker)

	status, body := api.do(t, http.MethodGet, "/api/admin/users", seekerToken, nil)
	if status != http.StatusForbidden || message(t, body) != "Access denied" {
		t.Errorf("admin group got %d %q", status, message(t, body))
	}

	status, body = api.do(t, http.MethodGet, "/api/employer/jobs", seekerToken, nil)
	if status != http.StatusForbidden || message(t, body) != "Access denied" {
		t.Errorf("employer group got %d %q", status, message(t, body))
	}
}

func TestAdminToggleBlockSelf(t *testing.T) {
	api := newTestAPI()
	adminID, adminToken := api.register(t, "Root", "root@x.com", models.RoleAdmin)

	status, body := api.do(t, http.MethodPut, "/api/admin/toggle-block/"+adminID.String(), adminToken, nil)
	if status != http.StatusBadRequest || message(t, body) != "Cannot block yourself" {
		t.Errorf("got %d %q", status, message(t, body))
	}

	u, _ := api.users.FindByID(adminID)
	if u.IsBlocked {
		t.Error("self toggle must not change isBlocked")
	}
}

func TestUpdateJobPartialBodyKeepsFields(t *testing.T) {
	api := newTestAPI()
	employerID, employerToken := api.register(t, "HR", "hr@acme.com", models.RoleEmployer)
	api.approveEmployer(t, employerID)

	status, body := api.do(t, http.MethodPost, "/api/employer/jobs", employerToken, map[string]string{
		"title": "Backend Engineer", "company": "Acme", "location": "Berlin",
		"jobType": "full-time", "description": "Build things",
	})
	if status != http.StatusCreated {
		t.Fatalf("create job: status %d", status)
	}
	var jobID uuid.UUID
	_ = json.Unmarshal(body["id"], &jobID)

	status, body = api.do(t, http.MethodPut, "/api/employer/jobs/"+jobID.String(), employerToken, map[string]string{
		"title": "Senior Backend Engineer",
	})
	if status != http.StatusOK {
		t.Fatalf("partial update: status %d (%s)", status, message(t, body))
	}

	stored, err := api.jobs.FindByID(jobID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Title != "Senior Backend Engineer" {
		t.Errorf("title = %q, want the new title", stored.Title)
	}
	if stored.Company != "Acme" || stored.Location != "Berlin" ||
		stored.JobType != "full-time" || stored.Description != "Build things" {
		t.Errorf("omitted fields were blanked: %+v", stored)
	}
}

func TestEmptyListingsSerializeAsArrays(t *testing.T) {
	api := newTestAPI()
	employerID, employerToken := api.register(t, "HR", "hr@acme.com", models.RoleEmployer)
	api.approveEmployer(t, employerID)

	for _, path := range []string{"/api/public/jobs", "/api/employer/jobs"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+employerToken)
		resp, err := api.app.Test(req)
		if err != nil {
			t.Fatalf("app.Test failed: %v", err)
		}
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if got := strings.TrimSpace(string(raw)); got != "[]" {
			t.Errorf("GET %s body = %s, want []", path, got)
		}
	}
}

func TestPublicJobsNeedNoToken(t *testing.T) {
	api := newTestAPI()

	status, _ := api.do(t, http.MethodGet, "/api/public/jobs", "", nil)
	if status != http.StatusOK {
		t.Errorf("public listing status = %d, want 200", status)
	}

	status, body := api.do(t, http.MethodGet, "/api/public/jobs/"+uuid.NewString(), "", nil)
	if status != http.StatusNotFound || message(t, body) != "Job not found" {
		t.Errorf("got %d %q", status, message(t, body))
	}
}
