package appwrite

import (
	"context"
	"net/http"
	"time"

	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform"
)

type accountPayload struct {
	ID    string `json:"$id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a accountPayload) account() domain.Account {
	return domain.Account{ID: a.ID, Email: a.Email, Name: a.Name}
}

type sessionPayload struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Expire string `json:"expire"`
}

func (s sessionPayload) session() domain.Session {
	// The platform serializes timestamps as RFC 3339; a parse failure just
	// leaves the expiry unset.
	expires, _ := time.Parse(time.RFC3339, s.Expire)
	return domain.Session{ID: s.ID, AccountID: s.UserID, ExpiresAt: expires}
}

func (c *Client) CreateAccount(ctx context.Context, id, email, password, name string) (domain.Account, error) {
	body := map[string]string{
		"userId":   id,
		"email":    email,
		"password": password,
		"name":     name,
	}

	var out accountPayload
	err := c.call(ctx, http.MethodPost, c.url("account"), body, &out)
	if err != nil {
		return domain.Account{}, err
	}
	return out.account(), nil
}

func (c *Client) GetAccount(ctx context.Context) (domain.Account, error) {
	var out accountPayload
	err := c.call(ctx, http.MethodGet, c.url("account"), nil, &out)
	if err != nil {
		return domain.Account{}, err
	}
	return out.account(), nil
}

func (c *Client) CreateEmailSession(ctx context.Context, email, password string) (domain.Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var out sessionPayload
	err := c.call(ctx, http.MethodPost, c.url("account", "sessions", "email"), body, &out)
	if err != nil {
		return domain.Session{}, err
	}
	return out.session(), nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	err := c.call(ctx, http.MethodDelete, c.url("account", "sessions", id), nil, nil)
	if err != nil {
		return err
	}
	if id == platform.CurrentSession {
		c.setSession("")
	}
	return nil
}
