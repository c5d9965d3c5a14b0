package backend

import (
	"context"
	"net/http"

	"schoolnote/internal/domain/service"
)

// Guest requests an anonymous session scoped to the given backend language name.
func (c *Client) Guest(ctx context.Context, language string) (*service.GuestGrant, error) {
	cl, err := c.jsonCall(http.MethodPost, c.endpoints.Guest, "", guestRequest{Language: language}, true)
	if err != nil {
		return nil, err
	}

	var resp guestResponse
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, emptyField(c.endpoints.Guest, "accessToken")
	}

	return &service.GuestGrant{AccessToken: resp.AccessToken, UserID: resp.UserID}, nil
}

// Login exchanges a provider token for a backend session.
func (c *Client) Login(ctx context.Context, credentials service.LoginCredentials) (*service.LoginGrant, error) {
	body := loginRequest{AuthToken: credentials.AuthToken, Provider: string(credentials.Provider)}
	cl, err := c.jsonCall(http.MethodPost, c.endpoints.Login, "", body, true)
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, emptyField(c.endpoints.Login, "accessToken")
	}

	return &service.LoginGrant{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		User:         resp.User.toEntity(),
	}, nil
}

// Logout tells the backend to drop the session.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	cl, err := c.jsonCall(http.MethodPost, c.endpoints.Logout, accessToken, nil, true)
	if err != nil {
		return err
	}

	return c.do(ctx, cl, nil)
}

// Refresh exchanges a refresh token for a new pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	cl, err := c.jsonCall(http.MethodPost, c.endpoints.Refresh, "", refreshRequest{RefreshToken: refreshToken}, true)
	if err != nil {
		return nil, err
	}

	var resp tokenResponse
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, emptyField(c.endpoints.Refresh, "accessToken")
	}

	return &service.TokenPair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, nil
}
