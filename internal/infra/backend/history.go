package backend

import (
	"context"
	"net/http"

	"schoolnote/internal/domain/entity"
)

// ListHistory returns past translations, newest first as the backend orders them.
func (c *Client) ListHistory(ctx context.Context, accessToken string) ([]entity.HistoryRecord, error) {
	cl, err := c.jsonCall(http.MethodGet, c.endpoints.History, accessToken, nil, true)
	if err != nil {
		return nil, err
	}

	var resp []historyRecordDTO
	if err := c.do(ctx, cl, &resp); err != nil {
		return nil, err
	}

	records := make([]entity.HistoryRecord, 0, len(resp))
	for i := range resp {
		records = append(records, resp[i].toEntity())
	}

	return records, nil
}
