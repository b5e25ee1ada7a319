// Package client is a typed HTTP client for the GatorHire API, usable from
// the CLI or any other Go program without touching the server packages.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gatorhire/internal/domain/application"
	"gatorhire/internal/domain/job"
	"gatorhire/internal/domain/savedjob"
)

// ErrorKind says which layer an APIError came from.
type ErrorKind string

const (
	// KindTransport covers network failures and anything below HTTP.
	KindTransport ErrorKind = "transport"
	// KindAPI is a non-2xx response from the server.
	KindAPI ErrorKind = "api"
	// KindDecode is a 2xx response whose body did not parse.
	KindDecode ErrorKind = "decode"
)

type APIError struct {
	Status  int
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Title     *string   `json:"title,omitempty"`
	Location  *string   `json:"location,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	Skills    []string  `json:"skills,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResult struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

type ProfileStats struct {
	ApplicationsCount   int     `json:"applicationsCount"`
	SavedJobsCount      int     `json:"savedJobsCount"`
	ProfileCompleteness float64 `json:"profileCompleteness"`
}

type SearchParams struct {
	Query    string
	Category string
	Type     string
	Location string
}

type ApplicationForm struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CoverLetter string `json:"coverLetter,omitempty"`
	ResumeURL   string `json:"resumeUrl,omitempty"`
	LinkedIn    string `json:"linkedIn,omitempty"`
	Portfolio   string `json:"portfolio,omitempty"`
	HeardFrom   string `json:"heardFrom,omitempty"`
}

type ProfileUpdate struct {
	FullName *string  `json:"fullName,omitempty"`
	Title    *string  `json:"title,omitempty"`
	Location *string  `json:"location,omitempty"`
	Bio      *string  `json:"bio,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

type JobInput struct {
	Title            string           `json:"title"`
	Company          string           `json:"company"`
	Location         string           `json:"location"`
	Type             string           `json:"type"`
	Salary           string           `json:"salary"`
	Description      string           `json:"description"`
	Requirements     []string         `json:"requirements"`
	Responsibilities []string         `json:"responsibilities,omitempty"`
	Benefits         []string         `json:"benefits,omitempty"`
	Category         string           `json:"category"`
	Status           string           `json:"status,omitempty"`
	CompanyInfo      *job.CompanyInfo `json:"companyInfo,omitempty"`
}

type UpdateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	JobID   string `json:"jobId"`
}

type BulkUnsaveResult struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

func (c *Client) AdminLogin(ctx context.Context, email, password string) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/api/auth/admin/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, email, password, fullName string) (AuthResult, error) {
	var out AuthResult
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"fullName": fullName,
	}, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *Client) Jobs(ctx context.Context) ([]job.Job, error) {
	var out []job.Job
	err := c.do(ctx, http.MethodGet, "/api/jobs", nil, &out)
	return out, err
}

func (c *Client) Job(ctx context.Context, id string) (job.Job, error) {
	var out job.Job
	if strings.TrimSpace(id) == "" {
		return out, &APIError{Kind: KindAPI, Message: "job id is required"}
	}
	err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) SearchJobs(ctx context.Context, params SearchParams) ([]job.Job, error) {
	q := url.Values{}
	if params.Query != "" {
		q.Set("q", params.Query)
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Type != "" {
		q.Set("jobType", params.Type)
	}
	if params.Location != "" {
		q.Set("location", params.Location)
	}

	path := "/api/jobs/search"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var out []job.Job
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) Recommendations(ctx context.Context) ([]job.Job, error) {
	var out []job.Job
	err := c.do(ctx, http.MethodGet, "/api/jobs/recommendations", nil, &out)
	return out, err
}

func (c *Client) Apply(ctx context.Context, jobID string, form ApplicationForm) (application.Application, error) {
	var out application.Application
	if strings.TrimSpace(jobID) == "" {
		return out, &APIError{Kind: KindAPI, Message: "job id is required"}
	}
	if strings.TrimSpace(form.FullName) == "" || strings.TrimSpace(form.Email) == "" {
		return out, &APIError{Kind: KindAPI, Message: "full name and email are required"}
	}
	err := c.do(ctx, http.MethodPost, "/api/jobs/"+url.PathEscape(jobID)+"/apply", form, &out)
	return out, err
}

func (c *Client) MyApplications(ctx context.Context) ([]application.Application, error) {
	var out []application.Application
	err := c.do(ctx, http.MethodGet, "/api/applications/user", nil, &out)
	return out, err
}

func (c *Client) ApplicationsForJob(ctx context.Context, jobID string) ([]application.Application, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, &APIError{Kind: KindAPI, Message: "job id is required"}
	}
	var out []application.Application
	err := c.do(ctx, http.MethodGet, "/api/applications/job?jobId="+url.QueryEscape(jobID), nil, &out)
	return out, err
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID, status string) error {
	return c.do(ctx, http.MethodPut, "/api/applications/status", map[string]string{
		"applicationId": applicationID,
		"status":        status,
	}, nil)
}

func (c *Client) SavedJobs(ctx context.Context) ([]savedjob.SavedJob, error) {
	var out []savedjob.SavedJob
	err := c.do(ctx, http.MethodGet, "/api/saved-jobs", nil, &out)
	return out, err
}

func (c *Client) SaveJob(ctx context.Context, jobID string) error {
	if strings.TrimSpace(jobID) == "" {
		return &APIError{Kind: KindAPI, Message: "job id is required"}
	}
	return c.do(ctx, http.MethodPost, "/api/saved-jobs", map[string]string{"jobId": jobID}, nil)
}

func (c *Client) UnsaveJob(ctx context.Context, jobID string) error {
	if strings.TrimSpace(jobID) == "" {
		return &APIError{Kind: KindAPI, Message: "job id is required"}
	}
	return c.do(ctx, http.MethodDelete, "/api/saved-jobs?jobId="+url.QueryEscape(jobID), nil, nil)
}

func (c *Client) BulkUnsaveJobs(ctx context.Context, jobIDs []string) (BulkUnsaveResult, error) {
	var out BulkUnsaveResult
	err := c.do(ctx, http.MethodDelete, "/api/saved-jobs/bulk", map[string][]string{"jobIds": jobIDs}, &out)
	return out, err
}

func (c *Client) Profile(ctx context.Context) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out)
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPut, "/api/profile", in, &out)
	return out, err
}

func (c *Client) ProfileStats(ctx context.Context) (ProfileStats, error) {
	var out ProfileStats
	err := c.do(ctx, http.MethodGet, "/api/profile/stats", nil, &out)
	return out, err
}

func (c *Client) AdminJobs(ctx context.Context) ([]job.Job, error) {
	var out []job.Job
	err := c.do(ctx, http.MethodGet, "/api/admin/jobs", nil, &out)
	return out, err
}

func (c *Client) CreateJob(ctx context.Context, in JobInput) (job.Job, error) {
	var out job.Job
	err := c.do(ctx, http.MethodPost, "/api/jobs", in, &out)
	return out, err
}

func (c *Client) UpdateJob(ctx context.Context, id string, in JobInput) (UpdateResult, error) {
	var out UpdateResult
	if strings.TrimSpace(id) == "" {
		return out, &APIError{Kind: KindAPI, Message: "job id is required"}
	}
	err := c.do(ctx, http.MethodPut, "/api/jobs/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return &APIError{Kind: KindAPI, Message: "job id is required"}
	}
	return c.do(ctx, http.MethodDelete, "/api/jobs/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindDecode, Message: err.Error()}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return &APIError{Kind: KindTransport, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Kind: KindAPI, Message: errorMessage(data, resp.StatusCode)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Status: resp.StatusCode, Kind: KindDecode, Message: err.Error()}
	}
	return nil
}

// errorMessage pulls the server's {"error": ...} body (or a {"message": ...}
// variant), falling back to the HTTP status text when the body is not the
// expected shape.
func errorMessage(data []byte, status int) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if msg := strings.TrimSpace(body.Error); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(body.Message); msg != "" {
			return msg
		}
	}
	return http.StatusText(status)
}
