package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/api/auth"
	"github.com/jobdeck/jobdeck/internal/api/domain"
	"github.com/jobdeck/jobdeck/internal/api/dto"
	"github.com/jobdeck/jobdeck/internal/api/handler"
	"github.com/jobdeck/jobdeck/internal/api/model"
	"github.com/jobdeck/jobdeck/internal/api/router"
	"github.com/jobdeck/jobdeck/internal/api/service"
)

// memoryStore backs all three store interfaces for router-level tests.
type memoryStore struct {
	mu           sync.Mutex
	users        map[string]model.User // keyed by provider/account pair
	jobs         []model.Job
	applications []model.Application
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: make(map[string]model.User)}
}

func (m *memoryStore) UpsertUser(ctx context.Context, profile *domain.ProviderProfile) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := profile.Provider + "/" + profile.ProviderAccountID
	if user, ok := m.users[key]; ok {
		user.Name = profile.Name
		m.users[key] = user
		return &user, nil
	}

	user := model.User{
		UserID:            uuid.New().String(),
		Name:              profile.Name,
		Provider:          profile.Provider,
		ProviderAccountID: profile.ProviderAccountID,
		CreatedAt:         time.Now().UTC(),
	}
	m.users[key] = user
	return &user, nil
}

func (m *memoryStore) CreateJob(ctx context.Context, job *model.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, *job)
	return nil
}

func (m *memoryStore) GetJobByID(ctx context.Context, jobID string) (*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.jobs {
		if m.jobs[i].JobID == jobID {
			job := m.jobs[i]
			return &job, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (m *memoryStore) SearchJobs(ctx context.Context, filter domain.SearchFilter) ([]model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Job
	for _, job := range m.jobs {
		if filter.Type != "" && job.JobType != filter.Type {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}

func (m *memoryStore) ListJobsByPoster(ctx context.Context, userID string) ([]model.PostedJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.PostedJob
	for _, job := range m.jobs {
		if job.PostedBy != userID {
			continue
		}
		count := 0
		for _, app := range m.applications {
			if app.JobID == job.JobID {
				count++
			}
		}
		out = append(out, model.PostedJob{Job: job, ApplicationCount: count})
	}
	return out, nil
}

func (m *memoryStore) CreateApplication(ctx context.Context, app *model.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	found := false
	for i := range m.jobs {
		if m.jobs[i].JobID == app.JobID {
			found = true
			break
		}
	}
	if !found {
		return domain.ErrJobNotFound
	}

	for _, existing := range m.applications {
		if existing.JobID == app.JobID && existing.UserID == app.UserID {
			return domain.ErrDuplicateApplication
		}
	}

	m.applications = append(m.applications, *app)
	return nil
}

func (m *memoryStore) ListApplicationsByUser(ctx context.Context, userID string) ([]model.UserApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.UserApplication
	for _, app := range m.applications {
		if app.UserID != userID {
			continue
		}
		entry := model.UserApplication{
			ApplicationID: app.ApplicationID,
			Status:        app.Status,
			AppliedAt:     app.AppliedAt,
			JobID:         app.JobID,
		}
		for _, job := range m.jobs {
			if job.JobID == app.JobID {
				entry.Title = job.Title
				entry.Company = job.Company
				entry.Location = job.Location
				entry.JobType = job.JobType
				entry.Salary = job.Salary
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func setupTestRouter(t *testing.T) (*gin.Engine, *memoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewManager(&auth.Config{
		Secret:   "router-test-secret",
		Issuer:   "jobboard",
		TokenTTL: time.Hour,
	})

	deps := &handler.Dependencies{
		Logger:       logger,
		Verifier:     tokens,
		Jobs:         service.NewJobService(store, nil, logger),
		Applications: service.NewApplicationService(store, nil, logger),
		Sessions:     service.NewSessionService(store, tokens, logger),
	}

	return router.SetupRouter(deps), store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func establishSession(t *testing.T, r *gin.Engine, accountID, name string) dto.SessionResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/session", "", dto.CreateSessionRequest{
		Provider:          "github",
		ProviderAccountID: accountID,
		Name:              name,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func postTestJob(t *testing.T, r *gin.Engine, token string) dto.JobDTO {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", token, dto.PostJobRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Type:        "Full-time",
		Description: "Build APIs",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var job dto.JobDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	return job
}

func TestRouter_Health(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_SessionLifecycle(t *testing.T) {
	r, _ := setupTestRouter(t)

	first := establishSession(t, r, "acct-42", "Ada")

	// Repeat sign-in keeps the same local user
	second := establishSession(t, r, "acct-42", "Ada L.")
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, "Ada L.", second.Name)

	t.Run("missing fields rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/session", "", map[string]string{
			"provider": "github",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_PostJob(t *testing.T) {
	r, _ := setupTestRouter(t)
	session := establishSession(t, r, "acct-42", "Ada")

	t.Run("authenticated post succeeds", func(t *testing.T) {
		job := postTestJob(t, r, session.Token)
		assert.NotEmpty(t, job.JobID)
		assert.Equal(t, session.UserID, job.PostedBy)
	})

	t.Run("anonymous post is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", "", dto.PostJobRequest{
			Title:       "Backend Engineer",
			Company:     "Acme",
			Location:    "Remote",
			Type:        "Full-time",
			Description: "Build APIs",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", "not-a-token", dto.PostJobRequest{
			Title:       "Backend Engineer",
			Company:     "Acme",
			Location:    "Remote",
			Type:        "Full-time",
			Description: "Build APIs",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown job type is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/jobs", session.Token, dto.PostJobRequest{
			Title:       "Backend Engineer",
			Company:     "Acme",
			Location:    "Remote",
			Type:        "Freelance",
			Description: "Build APIs",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_BrowseAndGetJob(t *testing.T) {
	r, _ := setupTestRouter(t)
	session := establishSession(t, r, "acct-42", "Ada")
	job := postTestJob(t, r, session.Token)

	t.Run("anonymous browse succeeds", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/jobs?type=Full-time", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.BrowseJobsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, job.JobID, resp.Jobs[0].JobID)
	})

	t.Run("detail by id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/jobs/"+job.JobID, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing job is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/jobs/"+uuid.New().String(), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed job id is 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/jobs/not-a-uuid", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_Apply(t *testing.T) {
	r, _ := setupTestRouter(t)
	poster := establishSession(t, r, "acct-1", "Ada")
	applicant := establishSession(t, r, "acct-2", "Grace")
	job := postTestJob(t, r, poster.Token)

	applyPath := "/api/v1/jobs/" + job.JobID + "/apply"

	t.Run("anonymous apply is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, applyPath, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("first apply succeeds", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, applyPath, applicant.Token, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var app dto.ApplicationDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &app))
		assert.Equal(t, job.JobID, app.JobID)
		assert.Equal(t, applicant.UserID, app.UserID)
		assert.Equal(t, "PENDING", app.Status)
	})

	t.Run("second apply conflicts", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, applyPath, applicant.Token, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("apply to missing job is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/jobs/"+uuid.New().String()+"/apply", applicant.Token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_Dashboards(t *testing.T) {
	r, _ := setupTestRouter(t)
	poster := establishSession(t, r, "acct-1", "Ada")
	applicant := establishSession(t, r, "acct-2", "Grace")
	job := postTestJob(t, r, poster.Token)

	w := doJSON(t, r, http.MethodPost, "/api/v1/jobs/"+job.JobID+"/apply", applicant.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("poster sees application count", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/me/jobs", poster.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ListPostedJobsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, 1, resp.Jobs[0].ApplicationCount)
	})

	t.Run("applicant sees own applications", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/me/applications", applicant.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ListApplicationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Applications, 1)
		assert.Equal(t, job.JobID, resp.Applications[0].JobID)
		assert.Equal(t, "Backend Engineer", resp.Applications[0].Title)
	})

	t.Run("dashboards require authentication", func(t *testing.T) {
		for _, path := range []string{"/api/v1/me/jobs", "/api/v1/me/applications"} {
			w := doJSON(t, r, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})
}
