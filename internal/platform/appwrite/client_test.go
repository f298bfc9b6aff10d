package appwrite

import (
	"context"
	"errors"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aoradev/aora-go/internal/config"
	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform"
	"github.com/aoradev/aora-go/internal/platform/appwritetest"
)

var ctx = context.Background()

func newTestClient(t *testing.T, fake *appwritetest.Server) *Client {
	t.Helper()
	server := httptest.NewServer(fake.Handler())
	t.Cleanup(server.Close)

	endpoint, err := url.Parse(server.URL + "/v1")
	if err != nil {
		t.Fatal(err)
	}

	return New(config.Configuration{
		Endpoint:  endpoint,
		Platform:  "com.example.app",
		ProjectID: "project-under-test",
	}, server.Client())
}

func TestAccountLifecycle(t *testing.T) {
	client := newTestClient(t, appwritetest.New())

	account, err := client.CreateAccount(ctx, platform.UniqueID(), "sarah@example.com", "correct horse", "sarah")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if account.Email != "sarah@example.com" || account.Name != "sarah" || account.ID == "" {
		t.Errorf("unexpected account: %+v", account)
	}

	// Registration alone does not authenticate.
	if _, err = client.GetAccount(ctx); !errors.Is(err, platform.ErrUnauthorized) {
		t.Fatalf("expected %s, got %v", platform.ErrUnauthorized, err)
	}

	session, err := client.CreateEmailSession(ctx, "sarah@example.com", "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if session.AccountID != account.ID {
		t.Errorf("session belongs to %s, expected %s", session.AccountID, account.ID)
	}

	got, err := client.GetAccount(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(account, got); diff != "" {
		t.Error(diff)
	}

	if err = client.DeleteSession(ctx, platform.CurrentSession); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err = client.GetAccount(ctx); !errors.Is(err, platform.ErrUnauthorized) {
		t.Errorf("expected %s after sign out, got %v", platform.ErrUnauthorized, err)
	}
}

func TestCreateEmailSessionBadCredentials(t *testing.T) {
	fake := appwritetest.New()
	client := newTestClient(t, fake)

	if _, err := client.CreateAccount(ctx, platform.UniqueID(), "sarah@example.com", "correct horse", "sarah"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	_, err := client.CreateEmailSession(ctx, "sarah@example.com", "wrong")
	if !errors.Is(err, platform.ErrUnauthorized) {
		t.Errorf("expected %s, got %v", platform.ErrUnauthorized, err)
	}

	var platformErr *Error
	if !errors.As(err, &platformErr) {
		t.Fatal("expected the platform error payload to be preserved")
	}
	if platformErr.Type != "user_invalid_credentials" {
		t.Errorf("unexpected error type %s", platformErr.Type)
	}
}

func TestListDocuments(t *testing.T) {
	fake := appwritetest.New()
	client := newTestClient(t, fake)

	fake.SeedDocument("videos", map[string]any{"title": "first"})
	fake.SeedDocument("videos", map[string]any{"title": "second"})

	docs, err := client.ListDocuments(ctx, "db", "videos", []string{platform.OrderDesc("$createdAt")})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].String("title") != "second" {
		t.Errorf("expected newest first, got %q", docs[0].String("title"))
	}
	if docs[0].ID == "" || docs[0].CreatedAt.IsZero() {
		t.Errorf("document envelope not populated: %+v", docs[0])
	}
	if !docs[0].CreatedAt.After(docs[1].CreatedAt) {
		t.Error("documents not in descending creation order")
	}
}

func TestCreateDocumentRequiresSession(t *testing.T) {
	client := newTestClient(t, appwritetest.New())

	_, err := client.CreateDocument(ctx, "db", "videos", platform.UniqueID(), map[string]any{"title": "x"})
	if !errors.Is(err, platform.ErrUnauthorized) {
		t.Errorf("expected %s, got %v", platform.ErrUnauthorized, err)
	}
}

func signIn(t *testing.T, client *Client) domain.Account {
	t.Helper()
	account, err := client.CreateAccount(ctx, platform.UniqueID(), "sarah@example.com", "correct horse", "sarah")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = client.CreateEmailSession(ctx, "sarah@example.com", "correct horse"); err != nil {
		t.Fatal(err)
	}
	return account
}
