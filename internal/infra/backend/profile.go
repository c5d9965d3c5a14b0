package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"schoolnote/internal/domain/entity"
	"schoolnote/internal/domain/service"
)

// GetUser loads the signed-in user.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*entity.User, error) {
	return c.userCall(ctx, http.MethodGet, c.endpoints.User, accessToken, nil)
}

// UpdateUser patches the user's own fields.
func (c *Client) UpdateUser(ctx context.Context, accessToken string, patch service.UserPatch) (*entity.User, error) {
	return c.userCall(ctx, http.MethodPatch, c.endpoints.User, accessToken, patch)
}

// AddChild registers a child; the backend assigns its id.
func (c *Client) AddChild(ctx context.Context, accessToken string, child entity.Child) (*entity.User, error) {
	return c.userCall(ctx, http.MethodPost, c.endpoints.Children, accessToken, childFromEntity(child))
}

// UpdateChild patches one child.
func (c *Client) UpdateChild(ctx context.Context, accessToken, childID string, patch service.ChildPatch) (*entity.User, error) {
	return c.childCall(ctx, http.MethodPatch, childID, accessToken, patch)
}

// RemoveChild deletes one child.
func (c *Client) RemoveChild(ctx context.Context, accessToken, childID string) (*entity.User, error) {
	return c.childCall(ctx, http.MethodDelete, childID, accessToken, nil)
}

func (c *Client) childCall(ctx context.Context, method, childID, accessToken string, payload any) (*entity.User, error) {
	base := strings.TrimRight(c.endpoints.Children, "/")
	cl, err := c.jsonCall(method, base+"/"+url.PathEscape(childID), accessToken, payload, true)
	if err != nil {
		return nil, err
	}
	cl.route = base + "/:id"

	return c.decodeUser(ctx, cl)
}

// userCall sends a profile request; every profile endpoint answers with the full user.
func (c *Client) userCall(ctx context.Context, method, path, accessToken string, payload any) (*entity.User, error) {
	cl, err := c.jsonCall(method, path, accessToken, payload, true)
	if err != nil {
		return nil, err
	}

	return c.decodeUser(ctx, cl)
}

func (c *Client) decodeUser(ctx context.Context, cl call) (*entity.User, error) {
	var resp userDTO
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, emptyField(cl.path, "id")
	}

	return resp.toEntity(), nil
}
