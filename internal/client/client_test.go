package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestLoginEstablishesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "test@example.com" || body["password"] != "testpass" {
			t.Fatalf("unexpected credentials: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"user":{"email":"test@example.com","role":"user"},"token":"abc"}`))
	}))
	defer srv.Close()

	session := NewSession(NewMemoryStorage())
	api := New(srv.URL, WithTokenSource(session))

	res, err := api.Login(context.Background(), "test@example.com", "testpass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := session.Establish(res.User, res.Token); err != nil {
		t.Fatalf("establish: %v", err)
	}

	if !session.LoggedIn() {
		t.Fatal("session should be authenticated")
	}
	if got := session.Token(); got != "abc" {
		t.Fatalf("token: got %q want %q", got, "abc")
	}
	u, ok := session.User()
	if !ok {
		t.Fatal("expected a cached user")
	}
	if u.Email != "test@example.com" || u.Role != "user" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestSaveThenBulkDeleteLeavesEmptyList(t *testing.T) {
	const jobID = "2a90802a-f60a-45df-b23f-18ab219fdcfa"

	var mu sync.Mutex
	saved := map[string]bool{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/saved-jobs":
			var body struct {
				JobID string `json:"jobId"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			saved[body.JobID] = true
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"success":true}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/saved-jobs/bulk":
			var body struct {
				JobIDs []string `json:"jobIds"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			var n int64
			for _, id := range body.JobIDs {
				if saved[id] {
					delete(saved, id)
					n++
				}
			}
			_, _ = w.Write([]byte(`{"success":true,"deleted":` + jsonInt(n) + `}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/saved-jobs":
			items := make([]map[string]string, 0, len(saved))
			for id := range saved {
				items = append(items, map[string]string{"jobId": id})
			}
			_ = json.NewEncoder(w).Encode(items)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	api := New(srv.URL)
	ctx := context.Background()

	if err := api.SaveJob(ctx, jobID); err != nil {
		t.Fatalf("save: %v", err)
	}
	res, err := api.BulkUnsaveJobs(ctx, []string{jobID})
	if err != nil {
		t.Fatalf("bulk unsave: %v", err)
	}
	if res.Deleted != 1 {
		t.Fatalf("expected 1 deleted, got %d", res.Deleted)
	}

	items, err := api.SavedJobs(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty saved list, got %d items", len(items))
	}
}

func TestApplyRejectsMissingFieldsLocally(t *testing.T) {
	api := New(noRequestServer(t))

	_, err := api.Apply(context.Background(), "job-1", ApplicationForm{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "full name and email are required" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestJobRejectsEmptyIDLocally(t *testing.T) {
	api := New(noRequestServer(t))

	_, err := api.Job(context.Background(), "  ")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "job id is required" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestErrorBodyBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Job not found"}`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	_, err := api.Job(context.Background(), "missing")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Kind != KindAPI || apiErr.Status != http.StatusNotFound {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
	if apiErr.Message != "Job not found" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestTransportFailureKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	api := New(srv.URL)
	_, err := api.Jobs(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Kind != KindTransport {
		t.Fatalf("expected transport kind, got %s", apiErr.Kind)
	}
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"`))
	}))
	defer srv.Close()

	api := New(srv.URL)
	_, err := api.Jobs(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Kind != KindDecode {
		t.Fatalf("expected decode kind, got %s", apiErr.Kind)
	}
}

func TestAuthenticatedRequestCarriesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("authorization header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	session := NewSession(NewMemoryStorage())
	if err := session.Establish(User{Email: "a@b.c"}, "tok-123"); err != nil {
		t.Fatalf("establish: %v", err)
	}

	api := New(srv.URL, WithTokenSource(session))
	if _, err := api.MyApplications(context.Background()); err != nil {
		t.Fatalf("request: %v", err)
	}
}

func TestCancelledContextDiscardsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	api := New(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.Jobs(ctx)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != KindTransport {
		t.Fatalf("expected transport error from cancelled context, got %v", err)
	}
}

// noRequestServer fails the test if any request reaches it.
func noRequestServer(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
