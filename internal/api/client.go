package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"

	"admin-world-client/internal/models"
)

// envelope is the backend's standard response wrapper.
type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Meta    *models.PageMeta `json:"meta"`
}

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient}
}

// Post sends a JSON body and decodes the enveloped response into out. The
// returned meta is nil when the backend sends none. All failure classes come
// back as *APIError; no other error type crosses this boundary.
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) (*models.PageMeta, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	return c.decode(resp, err, out)
}

// PostQuery issues a POST whose parameters travel in the query string, as
// the store listing endpoints expect.
func (c *Client) PostQuery(ctx context.Context, path string, query map[string]string, out interface{}) (*models.PageMeta, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Post(path)
	return c.decode(resp, err, out)
}

// Get issues a GET with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query map[string]string, out interface{}) (*models.PageMeta, error) {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	return c.decode(resp, err, out)
}

func (c *Client) decode(resp *resty.Response, err error, out interface{}) (*models.PageMeta, error) {
	if err != nil {
		return nil, NewNetworkError(err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		message := ""
		var env envelope
		if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr == nil {
			message = env.Message
		}
		return nil, NewServerError(resp.StatusCode(), message)
	}

	var env envelope
	if jsonErr := json.Unmarshal(resp.Body(), &env); jsonErr != nil {
		return nil, NewBadResponseError(jsonErr)
	}

	if out != nil && len(env.Data) > 0 {
		if jsonErr := json.Unmarshal(env.Data, out); jsonErr != nil {
			return nil, NewBadResponseError(jsonErr)
		}
	}

	return env.Meta, nil
}
