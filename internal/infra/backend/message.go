package backend

import (
	"context"
	"net/http"

	"schoolnote/internal/domain/entity"
)

// Compose translates a free-form message to the teacher.
func (c *Client) Compose(ctx context.Context, accessToken string, req entity.MessageComposeRequest) (*entity.MessageComposeResult, error) {
	body := composeRequest{Message: req.Message, TargetLanguage: req.TargetLanguage}
	cl, err := c.jsonCall(http.MethodPost, c.endpoints.Compose, accessToken, body, true)
	if err != nil {
		return nil, err
	}

	var resp composeResponse
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}
	if resp.TranslatedMessage == "" {
		return nil, emptyField(c.endpoints.Compose, "translatedMessage")
	}

	return &entity.MessageComposeResult{TranslatedMessage: resp.TranslatedMessage}, nil
}
