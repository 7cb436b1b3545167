package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neet-mastery/mastery-lambda/internal/router"
)

func TestSwaggerDocServed(t *testing.T) {
	h := router.New(router.RouterConfig{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not valid JSON: %v", err)
	}
	if doc.Info.Title != "NEET Mastery API" {
		t.Errorf("unexpected title %q", doc.Info.Title)
	}
	for _, p := range []string{"/auth/login", "/mastery", "/mastery/{id}/answer", "/exams/best/{chapterId}", "/chat/messages"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("doc.json missing path %s", p)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := router.New(router.RouterConfig{})

	for _, p := range []string{"/mastery/abc", "/exams", "/chat/messages", "/companion/mode"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s: want 401, got %d", p, rec.Code)
		}
	}
}
