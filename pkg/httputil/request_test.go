package httputil

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func TestParseJSON(t *testing.T) {
	type payload struct {
		Username string `json:"username"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice"}`))
		var p payload
		if err := ParseJSON(req, &p); err != nil {
			t.Fatalf("ParseJSON() error = %v", err)
		}
		if p.Username != "alice" {
			t.Errorf("Username = %q, want alice", p.Username)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":`))
		var p payload
		if err := ParseJSON(req, &p); err == nil {
			t.Error("ParseJSON() should fail on malformed JSON")
		}
	})

	t.Run("ParseJSONOrError writes 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`not json`))
		w := httptest.NewRecorder()
		var p payload
		if ParseJSONOrError(w, req, &p) {
			t.Error("ParseJSONOrError() should return false")
		}
		if w.Code != 400 {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestParsePathString(t *testing.T) {
	req := httptest.NewRequest("GET", "/books/isbn/123", nil)
	req = mux.SetURLVars(req, map[string]string{"isbn": "123"})

	got, err := ParsePathString(req, "isbn")
	if err != nil {
		t.Fatalf("ParsePathString() error = %v", err)
	}
	if got != "123" {
		t.Errorf("ParsePathString() = %q, want 123", got)
	}

	if _, err := ParsePathString(req, "missing"); err == nil {
		t.Error("ParsePathString() should fail for a missing parameter")
	}
}

func TestRequireNonEmpty(t *testing.T) {
	w := httptest.NewRecorder()
	if RequireNonEmpty(w, "", "username") {
		t.Error("RequireNonEmpty() should return false for empty value")
	}
	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	if !RequireNonEmpty(w, "alice", "username") {
		t.Error("RequireNonEmpty() should return true for non-empty value")
	}
}
