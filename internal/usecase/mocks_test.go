package usecase

import (
	"context"
	"encoding/json"
	"time"

	"gatorhire/internal/domain/application"
	"gatorhire/internal/domain/job"
	"gatorhire/internal/domain/savedjob"
	"gatorhire/internal/domain/user"
	"gatorhire/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	jobs    map[string]job.Job
	created []job.Job
	updated []job.Job
	deleted []string

	searchResult []job.Job
	searchParams *repository.JobSearchParams
	reqKeywords  []string

	err error
}

func newMockJobRepo(jobs ...job.Job) *mockJobRepo {
	m := &mockJobRepo{jobs: map[string]job.Job{}}
	for _, j := range jobs {
		m.jobs[j.ID] = j
	}
	return m
}

func (m *mockJobRepo) ListActive(context.Context) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []job.Job{}
	for _, j := range m.jobs {
		if j.Status == job.StatusActive {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) ListAll(context.Context) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []job.Job{}
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id string) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.jobs[id]
	return ok, nil
}

func (m *mockJobRepo) Search(_ context.Context, params repository.JobSearchParams) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.searchParams = &params
	return m.searchResult, nil
}

func (m *mockJobRepo) SearchByRequirements(_ context.Context, keywords []string, _ int) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.reqKeywords = keywords
	return m.searchResult, nil
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	m.jobs[j.ID] = j
	m.created = append(m.created, j)
	return nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.jobs[j.ID]; !ok {
		return job.ErrNotFound
	}
	m.jobs[j.ID] = j
	m.updated = append(m.updated, j)
	return nil
}

func (m *mockJobRepo) Delete(_ context.Context, id string) (repository.JobDeleteStats, error) {
	if m.err != nil {
		return repository.JobDeleteStats{}, m.err
	}
	if _, ok := m.jobs[id]; !ok {
		return repository.JobDeleteStats{}, job.ErrNotFound
	}
	delete(m.jobs, id)
	m.deleted = append(m.deleted, id)
	return repository.JobDeleteStats{}, nil
}

type mockUserRepo struct {
	users map[uuid.UUID]user.User
	err   error
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, err := m.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

type mockApplicationRepo struct {
	apps    []application.Application
	touched []string
	err     error
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	if m.err != nil {
		return m.err
	}
	m.apps = append(m.apps, a)
	return nil
}

func (m *mockApplicationRepo) ExistsByJobAndEmail(_ context.Context, jobID, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, a := range m.apps {
		if a.JobID == jobID && a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockApplicationRepo) ListByUser(_ context.Context, userID string) ([]application.Application, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []application.Application{}
	for _, a := range m.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) ListByJob(_ context.Context, jobID string) ([]application.Application, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []application.Application{}
	for _, a := range m.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, applicationID, status string) error {
	if m.err != nil {
		return m.err
	}
	for i, a := range m.apps {
		if a.ID == applicationID {
			m.apps[i].Status = status
			m.touched = append(m.touched, applicationID)
			return nil
		}
	}
	return application.ErrNotFound
}

func (m *mockApplicationRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	apps, err := m.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(apps), nil
}

type mockSavedJobRepo struct {
	items []savedjob.SavedJob
	err   error
}

func (m *mockSavedJobRepo) Save(_ context.Context, s savedjob.SavedJob) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, s)
	return nil
}

func (m *mockSavedJobRepo) Exists(_ context.Context, userID, jobID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, s := range m.items {
		if s.UserID == userID && s.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSavedJobRepo) Delete(_ context.Context, userID, jobID string) error {
	if m.err != nil {
		return m.err
	}
	for i, s := range m.items {
		if s.UserID == userID && s.JobID == jobID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return savedjob.ErrNotFound
}

func (m *mockSavedJobRepo) BulkDelete(ctx context.Context, userID string, jobIDs []string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var n int64
	for _, id := range jobIDs {
		if err := m.Delete(ctx, userID, id); err == nil {
			n++
		}
	}
	return n, nil
}

func (m *mockSavedJobRepo) ListByUser(_ context.Context, userID string) ([]savedjob.SavedJob, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []savedjob.SavedJob{}
	for _, s := range m.items {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSavedJobRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	items, err := m.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

type mockCache struct {
	store   map[string][]byte
	sets    []string
	deletes []string
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	m.sets = append(m.sets, key)
	return nil
}

func (m *mockCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.store, k)
		m.deletes = append(m.deletes, k)
	}
	return nil
}

type mockNotifier struct {
	received []application.Application
	changed  []string
}

func (m *mockNotifier) ApplicationReceived(a application.Application) {
	m.received = append(m.received, a)
}

func (m *mockNotifier) ApplicationStatusChanged(applicationID, status string) {
	m.changed = append(m.changed, applicationID+":"+status)
}
