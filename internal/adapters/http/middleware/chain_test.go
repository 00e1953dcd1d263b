package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/conductorhq/conductor/internal/adapters/http/middleware"
)

// tag appends a marker on the way in so ordering is observable.
func tag(marker string, order *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, marker)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChain_OrdersOutermostFirst(t *testing.T) {
	t.Parallel()

	var order []string
	chain := middleware.Chain(tag("a", &order), tag("b", &order), tag("c", &order))
	handler := chain(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

	want := []string{"a", "b", "c", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	called := false
	handler := middleware.Chain()(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", http.NoBody))

	if !called {
		t.Error("handler not called through empty chain")
	}
}

func TestRedactHeaders_HidesCredentials(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	headers.Set("Authorization", "Bearer secret-session")
	headers.Set("Cookie", "sid=abc")
	headers.Set("Accept", "application/json")

	attrs := middleware.RedactHeaders(headers)

	for _, a := range attrs {
		switch a.Key {
		case "Authorization", "Cookie":
			if a.Value.String() != "[REDACTED]" {
				t.Errorf("%s = %q, want [REDACTED]", a.Key, a.Value.String())
			}
		case "Accept":
			if a.Value.String() != "application/json" {
				t.Errorf("Accept = %q, want passthrough", a.Value.String())
			}
		}
	}
}
