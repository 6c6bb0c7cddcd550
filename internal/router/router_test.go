package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestMethodRouting(t *testing.T) {
	r := New()

	r.Get("/items", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("list"))
	})
	r.Post("/items", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	r.Delete("/items/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("deleted " + req.PathValue("id")))
	})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"get matches", http.MethodGet, "/items", http.StatusOK, "list"},
		{"post matches", http.MethodPost, "/items", http.StatusCreated, ""},
		{"path value extracted", http.MethodDelete, "/items/42", http.StatusOK, "deleted 42"},
		{"wrong method", http.MethodPut, "/items", http.StatusMethodNotAllowed, ""},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	r := New(tag("global"))
	r.Get("/x", func(w http.ResponseWriter, req *http.Request) {
		order = append(order, "handler")
	}, tag("route"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	want := []string{"global", "route", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestGroupMiddlewareIsolation(t *testing.T) {
	authCalls := 0
	auth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			authCalls++
			next.ServeHTTP(w, req)
		})
	}

	r := New()
	r.Get("/public", func(w http.ResponseWriter, req *http.Request) {})

	protected := r.Group(auth)
	protected.Get("/private", func(w http.ResponseWriter, req *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/public", nil))
	if authCalls != 0 {
		t.Errorf("group middleware ran on a route outside the group")
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/private", nil))
	if authCalls != 1 {
		t.Errorf("authCalls = %d, want 1", authCalls)
	}
}

func TestStatic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "logo.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := New()
	r.Static("/uploads/", dir)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/logo.png", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "png-bytes" {
		t.Errorf("body = %q", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
