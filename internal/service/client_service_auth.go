package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/kundelik/internal/adapter"
	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/store"
	"github.com/MKhiriev/kundelik/models"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

type clientAuthService struct {
	session store.SessionStore
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(session store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{session: session, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, username, email, password, confirm string) (models.User, error) {
	username, email = strings.TrimSpace(username), strings.TrimSpace(email)
	if username == "" || email == "" || password == "" || confirm == "" {
		return models.User{}, ErrRequiredFields
	}
	if err := validateEmail(email); err != nil {
		return models.User{}, err
	}
	if len([]rune(password)) < MinPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}
	if password != confirm {
		return models.User{}, ErrPasswordsMismatch
	}

	resp, err := a.adapter.Register(ctx, models.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Register").Msg("registration rejected")
		if errors.Is(err, adapter.ErrConflict) {
			return models.User{}, fmt.Errorf("%w: %w", ErrAccountExists, err)
		}
		return models.User{}, mapAdapterError(err)
	}

	return a.establish(ctx, resp)
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, ErrRequiredFields
	}
	if err := validateEmail(email); err != nil {
		return models.User{}, err
	}

	resp, err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.Login").Msg("login rejected")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.User{}, mapAdapterError(err)
	}

	return a.establish(ctx, resp)
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return nil
}

func (a *clientAuthService) Session() models.Session {
	return a.session.Current()
}

func (a *clientAuthService) establish(ctx context.Context, resp models.AuthResponse) (models.User, error) {
	if err := a.session.Establish(ctx, resp.AccessToken, resp.User); err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.establish").Msg("failed to persist session")
		return models.User{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	a.logger.Info().Int64("user_id", resp.User.ID).Msg("session established")
	return resp.User, nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
