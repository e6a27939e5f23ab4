package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/linkboard/linkboard/internal/models"
	"github.com/linkboard/linkboard/internal/repository"
	"github.com/linkboard/linkboard/internal/service"
)

// fakeItemService implements ItemService for testing.
type fakeItemService struct {
	ListFunc   func(ctx context.Context, isAdmin bool) ([]models.Item, error)
	CreateFunc func(ctx context.Context, req service.CreateItemRequest) (models.Item, error)
	UpdateFunc func(ctx context.Context, id string, fields map[string]any) error
	DeleteFunc func(ctx context.Context, id string) error
}

func (f *fakeItemService) List(ctx context.Context, isAdmin bool) ([]models.Item, error) {
	return f.ListFunc(ctx, isAdmin)
}
func (f *fakeItemService) Create(ctx context.Context, req service.CreateItemRequest) (models.Item, error) {
	return f.CreateFunc(ctx, req)
}
func (f *fakeItemService) Update(ctx context.Context, id string, fields map[string]any) error {
	return f.UpdateFunc(ctx, id, fields)
}
func (f *fakeItemService) Delete(ctx context.Context, id string) error {
	return f.DeleteFunc(ctx, id)
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestItemHandler_List(t *testing.T) {
	items := []models.Item{{ID: "a", Name: "Grafana", URL: "https://grafana"}}
	h := &ItemHandler{ItemService: &fakeItemService{
		ListFunc: func(_ context.Context, isAdmin bool) ([]models.Item, error) {
			if isAdmin {
				t.Error("expected anonymous listing without the admin flag")
			}
			return items, nil
		},
	}}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest("GET", "/api/items", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []models.Item
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("unexpected items: %+v", got)
	}
}

func TestItemHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		createErr      error
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `not a json`,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Missing required fields: name or url",
		},
		{
			name:           "missing fields",
			body:           `{"name":"Grafana"}`,
			createErr:      service.ErrMissingFields,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Missing required fields: name or url",
		},
		{
			name:           "success",
			body:           `{"name":"Grafana","url":"https://grafana"}`,
			expectedCode:   http.StatusCreated,
			expectedSubstr: `"id":"new-id"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &ItemHandler{ItemService: &fakeItemService{
				CreateFunc: func(_ context.Context, _ service.CreateItemRequest) (models.Item, error) {
					return models.Item{ID: "new-id"}, tt.createErr
				},
			}}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/items", bytes.NewBufferString(tt.body))
			h.Create(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if !bytes.Contains(rec.Body.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestItemHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		updateErr      error
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "empty body",
			body:           `{}`,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "No update data provided",
		},
		{
			name:           "no recognized fields",
			body:           `{"bogus":1}`,
			updateErr:      repository.ErrEmptyUpdate,
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "No valid fields to update",
		},
		{
			name:           "not found",
			body:           `{"name":"Renamed"}`,
			updateErr:      repository.ErrNotFound,
			expectedCode:   http.StatusNotFound,
			expectedSubstr: "Item not found",
		},
		{
			name:           "success",
			body:           `{"name":"Renamed"}`,
			expectedCode:   http.StatusOK,
			expectedSubstr: "Item updated successfully",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &ItemHandler{ItemService: &fakeItemService{
				UpdateFunc: func(_ context.Context, id string, fields map[string]any) error {
					if id != "id1" {
						t.Errorf("id = %q; want id1", id)
					}
					return tt.updateErr
				},
			}}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("PUT", "/api/items/id1", bytes.NewBufferString(tt.body))
			h.Update(rec, withURLParam(req, "id", "id1"))

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if !bytes.Contains(rec.Body.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestItemHandler_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		h := &ItemHandler{ItemService: &fakeItemService{
			DeleteFunc: func(context.Context, string) error { return repository.ErrNotFound },
		}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/api/items/ghost", nil)
		h.Delete(rec, withURLParam(req, "id", "ghost"))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h := &ItemHandler{ItemService: &fakeItemService{
			DeleteFunc: func(_ context.Context, id string) error {
				if id != "id1" {
					t.Errorf("id = %q; want id1", id)
				}
				return nil
			},
		}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/api/items/id1", nil)
		h.Delete(rec, withURLParam(req, "id", "id1"))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
