package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Makepad-fr/datenight/internal/model"
)

func setupTestServer(t *testing.T, seed ...model.IdeaInput) (*Server, *Store) {
	t.Helper()
	store := NewStore(seed)
	store.pick = func(int) int { return 0 }
	return New(store, nil), store
}

func serve(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, BasePath+path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, BasePath+path, nil)
	}
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	return rr
}

func TestHandleAllIdeas(t *testing.T) {
	s, _ := setupTestServer(t, model.IdeaInput{Title: "Picnic", BudgetCategory: "Free"})

	rr := serve(s, http.MethodGet, "/allIdeas", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var ideas []model.Idea
	if err := json.Unmarshal(rr.Body.Bytes(), &ideas); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ideas) != 1 || ideas[0].Title != "Picnic" || ideas[0].BudgetCategory != "Free" {
		t.Errorf("ideas = %+v", ideas)
	}
}

func TestHandleAllIdeasEmptyIsArray(t *testing.T) {
	s, _ := setupTestServer(t)
	rr := serve(s, http.MethodGet, "/allIdeas", "")
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestHandleRandomNoContent(t *testing.T) {
	s, _ := setupTestServer(t, model.IdeaInput{Title: "Picnic", BudgetCategory: "Free"})

	rr := serve(s, http.MethodGet, "/random/Free", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("first random status = %d", rr.Code)
	}
	rr = serve(s, http.MethodGet, "/random/Free", "")
	if rr.Code != http.StatusNoContent {
		t.Errorf("exhausted budget status = %d, want 204", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("204 should have no body, got %q", rr.Body.String())
	}
}

func TestHandleAddIdea(t *testing.T) {
	s, store := setupTestServer(t)

	rr := serve(s, http.MethodPost, "/addIdea", `{"title":"Camping","description":"","budgetCategory":"Cheap","location":"Lake"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %q", rr.Code, rr.Body.String())
	}
	var created model.Idea
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.Location != "Lake" {
		t.Errorf("created = %+v", created)
	}
	if len(store.All()) != 1 {
		t.Error("store should hold the new idea")
	}

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"title":`},
		{"blank title", `{"title":"  ","budgetCategory":"Free"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(s, http.MethodPost, "/addIdea", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestHandleUpdateAndDelete(t *testing.T) {
	s, store := setupTestServer(t, model.IdeaInput{Title: "Bowling", BudgetCategory: "Moderate"})

	rr := serve(s, http.MethodPut, "/updateIdea/1", `{"title":"Bowling league","description":"","budgetCategory":"Moderate","location":""}`)
	if rr.Code != http.StatusOK || rr.Body.String() != UpdatedMessage {
		t.Fatalf("update: %d %q", rr.Code, rr.Body.String())
	}
	if store.All()[0].Title != "Bowling league" {
		t.Error("update not applied")
	}

	if rr := serve(s, http.MethodPut, "/updateIdea/42", `{"title":"x"}`); rr.Code != http.StatusNotFound {
		t.Errorf("update missing id status = %d, want 404", rr.Code)
	}
	if rr := serve(s, http.MethodPut, "/updateIdea/abc", `{"title":"x"}`); rr.Code != http.StatusBadRequest {
		t.Errorf("update bad id status = %d, want 400", rr.Code)
	}

	rr = serve(s, http.MethodDelete, "/deleteIdea/1", "")
	if rr.Code != http.StatusOK || rr.Body.String() != DeletedMessage {
		t.Fatalf("delete: %d %q", rr.Code, rr.Body.String())
	}
	if rr := serve(s, http.MethodDelete, "/deleteIdea/1", ""); rr.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rr.Code)
	}
}

func TestHandleReset(t *testing.T) {
	s, _ := setupTestServer(t, model.IdeaInput{Title: "Picnic", BudgetCategory: "Free"})
	serve(s, http.MethodGet, "/random/Free", "")

	rr := serve(s, http.MethodPost, "/reset", "")
	if rr.Code != http.StatusOK || rr.Body.String() != ResetMessage {
		t.Fatalf("reset: %d %q", rr.Code, rr.Body.String())
	}
	if rr := serve(s, http.MethodGet, "/random/Free", ""); rr.Code != http.StatusOK {
		t.Errorf("random after reset status = %d, want 200", rr.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s, _ := setupTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, BasePath+"/addIdea", nil)
	req.Header.Set("Origin", "http://localhost:5500")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
