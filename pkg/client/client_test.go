package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(context.Background(), testLogger(), server.URL, token, 0)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return c, server
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(context.Background(), testLogger(), "", "token", 0); err == nil {
		t.Fatal("expected an error for an empty base URL")
	}
}

func TestBearerTokenIsAttached(t *testing.T) {
	var authHeader string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}), "s3cret")

	if _, err := c.ListProjects(context.Background(), ProjectListOptions{}); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if authHeader != "Bearer s3cret" {
		t.Fatalf("expected bearer token header, got %q", authHeader)
	}
}

func TestAnonymousClientSendsNoToken(t *testing.T) {
	var authHeader string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}), "")

	if _, err := c.ListProjects(context.Background(), ProjectListOptions{}); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if authHeader != "" {
		t.Fatalf("expected no Authorization header, got %q", authHeader)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), "expired")

	_, err := c.ListMilestones(context.Background(), 1, false)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAPIErrorCarriesMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"_error_message": "no such story"}`))
	}), "token")

	_, err := c.GetAttributeValues(context.Background(), 42)
	if err == nil {
		t.Fatal("expected an error")
	}

	apiErr := &apiError{}
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an apiError, got %T", err)
	}

	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", apiErr.Status)
	}
}

func TestListProjectsQuery(t *testing.T) {
	var query map[string][]string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`[{"id": 1, "name": "demo"}]`))
	}), "token")

	projects, err := c.ListProjects(context.Background(), ProjectListOptions{
		MemberID: 7,
		OrderBy:  "user_order",
		Slight:   true,
	})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if len(projects) != 1 || projects[0].Name != "demo" {
		t.Fatalf("unexpected projects: %+v", projects)
	}

	for key, expected := range map[string]string{
		"member":   "7",
		"order_by": "user_order",
		"slight":   "true",
	} {
		if got := query[key]; len(got) != 1 || got[0] != expected {
			t.Errorf("expected query %s=%s, got %v", key, expected, got)
		}
	}
}

func TestLogin(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		body := map[string]string{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}

		if body["type"] != "normal" || body["username"] != "jane" || body["password"] != "hunter2" {
			t.Errorf("unexpected login payload: %v", body)
		}

		w.Write([]byte(`{"id": 12, "username": "jane", "auth_token": "tok123"}`))
	}), "")

	creds, err := c.Login(context.Background(), "jane", "hunter2")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if creds.ID != 12 || creds.AuthToken != "tok123" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestRequestCounting(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}), "token")

	ctx := context.Background()

	c.ListProjects(ctx, ProjectListOptions{})
	c.ListProjects(ctx, ProjectListOptions{})
	c.ListMilestones(ctx, 1, false)
	c.GetAttributeValues(ctx, 7)
	c.GetAttributeValues(ctx, 8)

	counts := c.GetRequestCounts()

	if counts["/projects"] != 2 {
		t.Fatalf("expected 2 project requests, got %d", counts["/projects"])
	}

	if counts["/milestones"] != 1 {
		t.Fatalf("expected 1 milestone request, got %d", counts["/milestones"])
	}

	// per-story IDs are collapsed into one counter key
	if counts["/userstories/custom-attributes-values"] != 2 {
		t.Fatalf("expected 2 collapsed attribute requests, got %v", counts)
	}
}
