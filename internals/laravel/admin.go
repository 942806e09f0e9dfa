package laravel

import (
	"context"
	"net/http"
)

func (c *Client) AdminUsers(ctx context.Context, token string) ([]map[string]any, error) {
	body, err := c.call(ctx, http.MethodGet, "/api/admin/users", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(body), nil
}

func (c *Client) Feedback(ctx context.Context, token string) ([]map[string]any, error) {
	body, err := c.call(ctx, http.MethodGet, "/api/admin/feedback", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(body), nil
}

func (c *Client) UpdateFeedback(ctx context.Context, token, id string, payload map[string]any) (map[string]any, error) {
	body, err := c.call(ctx, http.MethodPut, "/api/admin/feedback/"+escapeID(id), token, payload)
	if err != nil {
		return nil, err
	}
	return decodeObject(body), nil
}

func (c *Client) DeleteFeedback(ctx context.Context, token, id string) error {
	_, err := c.call(ctx, http.MethodDelete, "/api/admin/feedback/"+escapeID(id), token, nil)
	return err
}
