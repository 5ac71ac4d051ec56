package simbrief

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchOFP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("username"); got != "testpilot" {
			t.Errorf("username query = %q, want testpilot", got)
		}
		if got := r.URL.Query().Get("json"); got != "1" {
			t.Errorf("json query = %q, want 1", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleOFP))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	ofp, err := c.FetchOFP(context.Background(), "  testpilot  ")
	if err != nil {
		t.Fatal(err)
	}
	if ofp.General.OrigICAO != "EDDF" {
		t.Errorf("origin = %q, want EDDF", ofp.General.OrigICAO)
	}
}

func TestFetchOFPErrors(t *testing.T) {
	t.Run("empty username", func(t *testing.T) {
		if _, err := NewClient().FetchOFP(context.Background(), "   "); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no flight plan on file", http.StatusBadRequest)
		}))
		defer srv.Close()

		c := NewClient()
		c.BaseURL = srv.URL
		if _, err := c.FetchOFP(context.Background(), "testpilot"); err == nil {
			t.Fatal("expected an error for HTTP 400")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>maintenance</html>"))
		}))
		defer srv.Close()

		c := NewClient()
		c.BaseURL = srv.URL
		if _, err := c.FetchOFP(context.Background(), "testpilot"); err == nil {
			t.Fatal("expected an error for a non-JSON body")
		}
	})
}
