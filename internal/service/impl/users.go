package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform"
	"github.com/aoradev/aora-go/internal/service"
	"github.com/aoradev/aora-go/internal/validate"
)

func (s *AppService) CreateUser(ctx context.Context, email, password, username string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if err := validate.SignUpForm(username, password, email); err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	account, err := s.Platform.CreateAccount(ctx, platform.UniqueID(), email, password, username)
	if err != nil {
		return domain.User{}, err
	}
	if account.ID == "" {
		return domain.User{}, errors.New("platform returned an empty account")
	}

	// Signing in here makes the new session ambient, so the document create
	// below already runs authenticated.
	if _, err = s.SignIn(ctx, email, password); err != nil {
		return domain.User{}, err
	}

	avatar := s.Platform.InitialsURL(username)

	doc, err := s.Platform.CreateDocument(ctx, s.Config.DatabaseID, s.Config.UserCollectionID, platform.UniqueID(), map[string]any{
		"accountId": account.ID,
		"email":     email,
		"username":  username,
		"avatar":    avatar.String(),
	})
	if err != nil {
		log.Error().Err(err).Str("account", account.ID).Msg("account created but user document failed")
		return domain.User{}, err
	}

	return docToUser(doc), nil
}

func (s *AppService) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validate.SignInForm(email, password); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	return s.Platform.CreateEmailSession(ctx, email, password)
}

func (s *AppService) GetAccount(ctx context.Context) (domain.Account, error) {
	return s.Platform.GetAccount(ctx)
}

func (s *AppService) GetCurrentUser(ctx context.Context) (domain.User, error) {
	account, err := s.GetAccount(ctx)
	if err != nil {
		if errors.Is(err, platform.ErrUnauthorized) {
			return domain.User{}, service.ErrNoSession
		}
		return domain.User{}, err
	}

	docs, err := s.Platform.ListDocuments(ctx, s.Config.DatabaseID, s.Config.UserCollectionID, []string{
		platform.Equal("accountId", account.ID),
	})
	if err != nil {
		return domain.User{}, err
	}
	if len(docs) == 0 {
		return domain.User{}, fmt.Errorf("%w: no user document for account %s", service.ErrNotFound, account.ID)
	}

	return docToUser(docs[0]), nil
}

func (s *AppService) SignOut(ctx context.Context) error {
	err := s.Platform.DeleteSession(ctx, platform.CurrentSession)
	if errors.Is(err, platform.ErrUnauthorized) {
		return fmt.Errorf("%w: %s", service.ErrNoSession, err)
	}
	return err
}
