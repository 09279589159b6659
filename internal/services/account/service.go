// Package account talks to the backend auth endpoints.
//
// The service is side-effect free beyond the network call: persisting a
// successful login into the session store is the caller's job.
package account

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/research-collab/collab-cli/internal/api"
	"github.com/research-collab/collab-cli/internal/validate"
)

// Service defines account operations against the backend.
type Service interface {
	// Register creates an account and returns the server's message.
	// Uniqueness is the server's call; the client only checks format.
	Register(ctx context.Context, creds Credentials) (string, error)

	// Login exchanges credentials for a bearer token and user id.
	Login(ctx context.Context, email, password string) (LoginResult, error)
}

// Credentials is a registration or login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is a successful login: the token and user id the caller
// should persist, plus the server's message.
type LoginResult struct {
	Token   string
	UserID  string
	Message string
}

// service implements Service over the HTTP facade
type service struct {
	api *api.Client
}

// NewService creates an account service backed by the given API client.
func NewService(client *api.Client) Service {
	return &service{api: client}
}

// Register validates the credentials and posts them to /auth/register.
// Invalid input returns immediately; no request is made.
func (s *service) Register(ctx context.Context, creds Credentials) (string, error) {
	if err := validateCredentials(creds.Email, creds.Password); err != nil {
		return "", err
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := s.api.Post(ctx, "/auth/register", creds, &resp); err != nil {
		slog.Error("registration request failed", "error", err)
		return "", ErrRegistrationFailed
	}
	return resp.Message, nil
}

// Login validates the credentials and posts them to /auth/login.
// Any transport or server failure surfaces as ErrInvalidCredentials;
// the caller retries only through a new user action.
func (s *service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if err := validateCredentials(email, password); err != nil {
		return LoginResult{}, err
	}

	var resp struct {
		Message string      `json:"message"`
		Token   string      `json:"token"`
		UserID  json.Number `json:"user_id"`
	}
	body := Credentials{Email: email, Password: password}
	if err := s.api.Post(ctx, "/auth/login", body, &resp); err != nil {
		slog.Error("login request failed", "error", err)
		return LoginResult{}, ErrInvalidCredentials
	}
	return LoginResult{
		Token:   resp.Token,
		UserID:  resp.UserID.String(),
		Message: resp.Message,
	}, nil
}

func validateCredentials(email, password string) error {
	if !validate.Required(email) {
		return ErrEmailRequired
	}
	if !validate.Email(email) {
		return ErrEmailInvalid
	}
	if !validate.Required(password) {
		return ErrPasswordRequired
	}
	return nil
}
