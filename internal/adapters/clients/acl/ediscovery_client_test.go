package acl

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/domain"
)

func TestEdiscoveryClient_GetContentContainer(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/reports/report-1/contents/container/space-1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{
			"containerId":      "space-1",
			"containerType":    "space",
			"containerName":    "enc-name",
			"encryptionKeyUrl": testKeyURI,
			"onBehalfOfUser":   "officer",
			"participants":     []map[string]string{{"id": "u1", "displayName": "Alice"}},
		})
	}))
	defer ts.Close()

	client := NewEdiscoveryClient(newTestClient(t, ts.URL), slog.Default())
	c, err := client.GetContentContainer(context.Background(), "report-1", "space-1")
	if err != nil {
		t.Fatalf("GetContentContainer() error = %v", err)
	}
	if c.ContainerID != "space-1" || c.OnBehalfOfUser != "officer" || c.EncryptionKeyURL != testKeyURI {
		t.Errorf("GetContentContainer() = %+v", c)
	}
	if len(c.Participants) != 1 || c.Participants[0].DisplayName != "Alice" {
		t.Errorf("Participants = %+v", c.Participants)
	}
}

func TestEdiscoveryClient_GetContentContainer_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		writeJSON(t, w, map[string]any{"detail": "container space-9 not found"})
	}))
	defer ts.Close()

	client := NewEdiscoveryClient(newTestClient(t, ts.URL), slog.Default())
	_, err := client.GetContentContainer(context.Background(), "report-1", "space-9")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetContentContainer() error = %v, want ErrNotFound", err)
	}
}

func TestEdiscoveryClient_GetContentContainer_EscapesPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		writeJSON(t, w, map[string]any{"containerId": "a/b"})
	}))
	defer ts.Close()

	client := NewEdiscoveryClient(newTestClient(t, ts.URL), slog.Default())
	if _, err := client.GetContentContainer(context.Background(), "report-1", "a/b"); err != nil {
		t.Fatalf("GetContentContainer() error = %v", err)
	}
	if gotPath != "/api/v1/reports/report-1/contents/container/a%2Fb" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestEdiscoveryClient_Name(t *testing.T) {
	t.Parallel()

	client := NewEdiscoveryClient(newTestClient(t, "http://127.0.0.1:1"), slog.Default())
	if client.Name() != "ediscovery-api" {
		t.Errorf("Name() = %q, want ediscovery-api", client.Name())
	}
}
