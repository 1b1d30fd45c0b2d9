package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"collections-backend/internal/middleware"
	"collections-backend/internal/models"
	"collections-backend/internal/services"

	"github.com/gorilla/mux"
)

func newCustomerHandler(t *testing.T, upstream http.Handler) *CustomerHandler {
	t.Helper()
	client := newPortalForTest(t, upstream)
	return NewCustomerHandler(
		services.NewCustomerService(client),
		services.NewActionService(client),
		services.NewDashboardService(client),
	)
}

// asAdmin mimics the auth middleware: path vars set, admin in context.
func asAdmin(r *http.Request) *http.Request {
	r = mux.SetURLVars(r, map[string]string{"id": "41"})
	admin := &models.Administrator{ID: 7, Name: "Jo Admin", Username: "jo"}
	ctx := context.WithValue(r.Context(), middleware.AdminKey, admin)
	ctx = context.WithValue(ctx, middleware.SessionIDKey, "sid")
	return r.WithContext(ctx)
}

func TestInactiveSinceDegradesToUnresolved(t *testing.T) {
	handler := newCustomerHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/customers/41/inactive-since", nil))
	w := httptest.NewRecorder()
	handler.InactiveSince(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on upstream failure", w.Code)
	}
	var resp struct {
		Resolved bool `json:"resolved"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Resolved {
		t.Error("resolved = true on upstream failure")
	}
}

func TestInactiveSinceResolved(t *testing.T) {
	handler := newCustomerHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"new_status": "disabled", "date": "2024-03-15", "time": "10:00:00"}]`)
	}))

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/api/customers/41/inactive-since", nil))
	w := httptest.NewRecorder()
	handler.InactiveSince(w, req)

	var resp struct {
		Resolved bool   `json:"resolved"`
		Label    string `json:"inactive_since"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Resolved || resp.Label != "Mar 2024" {
		t.Fatalf("resp = %+v, body %s", resp, w.Body.String())
	}
}

func TestPostCommentRequiresBody(t *testing.T) {
	handler := newCustomerHandler(t, http.NotFoundHandler())

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/customers/41/comments",
		strings.NewReader(`{"comment": ""}`)))
	w := httptest.NewRecorder()
	handler.PostComment(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRecordPromiseValidationIs400(t *testing.T) {
	handler := newCustomerHandler(t, http.NotFoundHandler())

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/customers/41/promises",
		strings.NewReader(`{"amount": "500", "date": ""}`)))
	w := httptest.NewRecorder()
	handler.RecordPromise(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", w.Code, w.Body.String())
	}
}

func TestScheduleCollectionUnknownCustomerIs404(t *testing.T) {
	handler := newCustomerHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/customers/customer") {
			fmt.Fprint(w, `[]`)
			return
		}
		http.NotFound(w, r)
	}))

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/customers/41/collections",
		strings.NewReader(`{"date": "2024-07-01"}`)))
	w := httptest.NewRecorder()
	handler.ScheduleCollection(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestScheduleCollectionRejectedWriteSurfacesBackendDetail(t *testing.T) {
	handler := newCustomerHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/customers/customer"):
			fmt.Fprint(w, `[{"id": 41, "name": "Alice", "status": "blocked"}]`)
		case strings.HasSuffix(r.URL.Path, "/scheduling/tasks"):
			http.Error(w, `{"error": "scheduling rejected"}`, http.StatusUnprocessableEntity)
		default:
			http.NotFound(w, r)
		}
	}))

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/customers/41/collections",
		strings.NewReader(`{"date": "2024-07-01"}`)))
	w := httptest.NewRecorder()
	handler.ScheduleCollection(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if !strings.Contains(w.Body.String(), "scheduling rejected") {
		t.Errorf("body = %s, want backend detail passed through", w.Body.String())
	}
}

func TestNotesBadCustomerID(t *testing.T) {
	handler := newCustomerHandler(t, http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/customers/abc/notes", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	w := httptest.NewRecorder()
	handler.Notes(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
