package describe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "k1" {
			t.Errorf("key not forwarded, query = %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  A fine cap for sunny days.  "}]}}]}`))
	}))
	defer srv.Close()

	g := NewGenerator(srv.URL, "k1")
	got := g.Generate(context.Background(), "Cap")
	if got != "A fine cap for sunny days." {
		t.Fatalf("Generate = %q", got)
	}
}

func TestGenerateFallsBack(t *testing.T) {
	// missing key
	g := NewGenerator("http://example.invalid", "")
	if got := g.Generate(context.Background(), "Cap"); got != Fallback {
		t.Fatalf("missing key: %q", got)
	}

	// non-200 from the API
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()
	g = NewGenerator(srv.URL, "k1")
	if got := g.Generate(context.Background(), "Cap"); got != Fallback {
		t.Fatalf("non-200: %q", got)
	}

	// empty candidates
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv2.Close()
	g = NewGenerator(srv2.URL, "k1")
	if got := g.Generate(context.Background(), "Cap"); got != Fallback {
		t.Fatalf("empty candidates: %q", got)
	}
}
