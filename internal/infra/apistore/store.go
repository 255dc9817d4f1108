// Package apistore backs the repositories with a remote taskdeck
// server. Records travel as JSON over the raw store endpoints; all
// derivation still happens on the caller's side.
package apistore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Store is an HTTP client for a remote record store.
type Store struct {
	client  *http.Client
	baseURL string
}

// New creates a Store talking to the server at baseURL,
// e.g. "http://localhost:8080".
func New(baseURL string) *Store {
	return &Store{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

// Initialize verifies the remote server is reachable. The remote store
// owns its own data files, so there is nothing to create here.
func (s *Store) Initialize() error {
	if !s.IsInitialized() {
		return fmt.Errorf("server unreachable at %s", s.baseURL)
	}
	return nil
}

// IsInitialized reports whether the remote server answers health checks.
func (s *Store) IsInitialized() bool {
	resp, err := s.client.Get(s.baseURL + "/api/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Tasks returns the task repository view of the remote store.
func (s *Store) Tasks() domain.TaskRepository {
	return &taskRepo{store: s}
}

// Categories returns the category repository view of the remote store.
func (s *Store) Categories() domain.CategoryRepository {
	return &categoryRepo{store: s}
}

// do issues a request and decodes the response into out (if non-nil).
// A 404 maps to notFound so callers can treat missing records per the
// repository contract.
func (s *Store) do(method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

var errNotFound = fmt.Errorf("record not found")

type taskRepo struct {
	store *Store
}

func (r *taskRepo) Get(id int) (*domain.Task, error) {
	var rec taskRecord
	err := r.store.do(http.MethodGet, fmt.Sprintf("/api/store/tasks/%d", id), nil, &rec)
	if err == errNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toTask(), nil
}

func (r *taskRepo) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	path := "/api/store/tasks"
	sep := "?"
	if filter.CategoryID != nil {
		path += fmt.Sprintf("%scategory=%d", sep, *filter.CategoryID)
		sep = "&"
	}
	if filter.Completed != nil {
		path += fmt.Sprintf("%scompleted=%t", sep, *filter.Completed)
	}

	var resp struct {
		Tasks []taskRecord `json:"tasks"`
	}
	if err := r.store.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(resp.Tasks))
	for _, rec := range resp.Tasks {
		tasks = append(tasks, rec.toTask())
	}
	return tasks, nil
}

func (r *taskRepo) Save(task *domain.Task) error {
	path := fmt.Sprintf("/api/store/tasks/%d", task.ID)
	return r.store.do(http.MethodPut, path, toTaskRecord(task), nil)
}

func (r *taskRepo) Delete(id int) error {
	err := r.store.do(http.MethodDelete, fmt.Sprintf("/api/store/tasks/%d", id), nil, nil)
	if err == errNotFound {
		return domain.ErrTaskNotFound
	}
	return err
}

func (r *taskRepo) NextID() (int, error) {
	var resp struct {
		ID int `json:"id"`
	}
	if err := r.store.do(http.MethodPost, "/api/store/tasks/next-id", nil, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

type categoryRepo struct {
	store *Store
}

func (r *categoryRepo) Get(id int) (*domain.Category, error) {
	var rec categoryRecord
	err := r.store.do(http.MethodGet, fmt.Sprintf("/api/store/categories/%d", id), nil, &rec)
	if err == errNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toCategory(), nil
}

func (r *categoryRepo) List() ([]*domain.Category, error) {
	var resp struct {
		Categories []categoryRecord `json:"categories"`
	}
	if err := r.store.do(http.MethodGet, "/api/store/categories", nil, &resp); err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(resp.Categories))
	for _, rec := range resp.Categories {
		categories = append(categories, rec.toCategory())
	}
	return categories, nil
}

func (r *categoryRepo) Save(category *domain.Category) error {
	path := fmt.Sprintf("/api/store/categories/%d", category.ID)
	return r.store.do(http.MethodPut, path, toCategoryRecord(category), nil)
}

func (r *categoryRepo) Delete(id int) error {
	err := r.store.do(http.MethodDelete, fmt.Sprintf("/api/store/categories/%d", id), nil, nil)
	if err == errNotFound {
		return domain.ErrCategoryNotFound
	}
	return err
}

func (r *categoryRepo) NextID() (int, error) {
	var resp struct {
		ID int `json:"id"`
	}
	if err := r.store.do(http.MethodPost, "/api/store/categories/next-id", nil, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

var (
	_ domain.StoreInitializer   = (*Store)(nil)
	_ domain.TaskRepository     = (*taskRepo)(nil)
	_ domain.CategoryRepository = (*categoryRepo)(nil)
)
