package client

import (
	"context"
	"net/http"

	"plutusgrip-client/internal/dto"
	apierrors "plutusgrip-client/internal/errors"
	"plutusgrip-client/internal/models"
)

// Register creates a new account and persists the returned session.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var resp dto.LoginResponse
	if err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     registerEndpoint,
		resource: "auth",
		body:     req,
		out:      &resp,
	}); err != nil {
		return nil, err
	}

	if err := c.storeSession(&resp); err != nil {
		return nil, err
	}

	c.metrics.RecordSessionEvent("register")
	c.logger.Info("account registered", "email", req.Email)
	return &resp.User, nil
}

// Login authenticates with email and password and persists the
// returned session. A 401 here means rejected credentials, not an
// expired session.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*models.User, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var resp dto.LoginResponse
	if err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     loginEndpoint,
		resource: "auth",
		body:     req,
		out:      &resp,
	}); err != nil {
		return nil, err
	}

	if err := c.storeSession(&resp); err != nil {
		return nil, err
	}

	c.metrics.RecordSessionEvent("login")
	c.logger.Info("logged in", "email", req.Email)
	return &resp.User, nil
}

// CurrentUser fetches the authenticated user's profile and refreshes
// the persisted copy.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/auth/me",
		resource: "auth",
		out:      &user,
	}); err != nil {
		return nil, err
	}

	if err := c.store.SetUser(&user); err != nil {
		c.logger.Warn("failed to persist user profile", "error", err)
	}

	return &user, nil
}

// Logout invalidates the session server side. Local credentials are
// cleared unconditionally, even when the call itself fails, so the
// client never looks authenticated after a logout attempt.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/auth/logout",
		resource: "auth",
	})

	if clearErr := c.store.ClearTokens(); clearErr != nil && err == nil {
		err = clearErr
	}

	c.metrics.RecordSessionEvent("logout")
	return err
}

// StoredUser returns the persisted user profile without a network call.
func (c *Client) StoredUser() (*models.User, error) {
	return c.store.User()
}

func (c *Client) storeSession(resp *dto.LoginResponse) error {
	if err := c.store.SetTokens(resp.AccessToken, resp.RefreshToken); err != nil {
		return err
	}
	return c.store.SetUser(&resp.User)
}
