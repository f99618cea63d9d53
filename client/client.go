// Package client calls the finpredictor API.
//
// Reads behind dashboard views (Portfolio, Goals, Predict) are best-effort:
// failures are logged and answered with empty values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/store"
)

// Client is a finpredictor API client.
type Client struct {
	base string
	http *http.Client
}

// New returns a Client of the API at baseURL. A nil hc is http.DefaultClient.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: strings.TrimSuffix(baseURL, "/"), http: hc}
}

// APIError is a failed API call.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: %s", http.StatusText(e.Status))
	}
	return fmt.Sprintf("api: %s: %s", http.StatusText(e.Status), e.Detail)
}

// Is maps statuses to the errors the server answered them for.
func (e *APIError) Is(target error) bool {
	switch e.Status {
	case http.StatusNotFound:
		return target == store.ErrNotFound
	case http.StatusUnauthorized:
		return target == store.ErrInvalidCredentials
	case http.StatusUnprocessableEntity:
		return target == finpredictor.ErrDomain
	case http.StatusBadRequest:
		return target == finpredictor.ErrInvalid
	}
	return false
}

// do sends in as JSON and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &detail) == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("cannot decode %s %s: %w", method, path, err)
	}
	return nil
}

func userPath(format, userID string, more ...string) string {
	args := []any{url.PathEscape(userID)}
	for _, m := range more {
		args = append(args, url.PathEscape(m))
	}
	return fmt.Sprintf(format, args...)
}

// Signup registers a user.
func (c *Client) Signup(ctx context.Context, in finpredictor.UserCreate) (finpredictor.User, error) {
	var u finpredictor.User
	err := c.do(ctx, http.MethodPost, "/api/users/signup", in, &u)
	return u, err
}

// Login returns the user registered with these credentials.
func (c *Client) Login(ctx context.Context, in finpredictor.Credentials) (finpredictor.User, error) {
	var u finpredictor.User
	err := c.do(ctx, http.MethodPost, "/api/users/login", in, &u)
	return u, err
}

// User returns a user by id.
func (c *Client) User(ctx context.Context, id string) (finpredictor.User, error) {
	var u finpredictor.User
	err := c.do(ctx, http.MethodGet, userPath("/api/users/%s", id), nil, &u)
	return u, err
}

// Portfolio returns the portfolio of a user, empty on failure.
func (c *Client) Portfolio(ctx context.Context, userID string) finpredictor.Portfolio {
	p := finpredictor.Portfolio{UserID: userID, Assets: []finpredictor.Asset{}}
	var raw any
	if err := c.do(ctx, http.MethodGet, userPath("/api/portfolio/%s", userID), nil, &raw); err != nil {
		log.Printf("portfolio of %q: %v", userID, err)
		return p
	}
	assets, err := decodeAssets(raw)
	if err != nil {
		log.Printf("portfolio of %q: %v", userID, err)
		return p
	}
	p.Assets = assets
	return p
}

// decodeAssets accepts both {"assets": [...]} and a bare array of assets.
func decodeAssets(raw any) ([]finpredictor.Asset, error) {
	list := raw
	if _, ok := raw.([]any); !ok {
		v, err := jsonpath.Get("$.assets", raw)
		if err != nil {
			return nil, fmt.Errorf("no assets in response: %w", err)
		}
		list = v
	}
	if list == nil {
		return []finpredictor.Asset{}, nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	assets := []finpredictor.Asset{}
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("invalid assets: %w", err)
	}
	return assets, nil
}

// AddAsset adds an asset to the portfolio of a user.
func (c *Client) AddAsset(ctx context.Context, userID string, in finpredictor.AssetCreate) (finpredictor.Asset, error) {
	var a finpredictor.Asset
	err := c.do(ctx, http.MethodPost, userPath("/api/portfolio/%s/assets", userID), in, &a)
	return a, err
}

// DeleteAsset removes an asset from the portfolio of a user.
func (c *Client) DeleteAsset(ctx context.Context, userID, assetID string) error {
	return c.do(ctx, http.MethodDelete, userPath("/api/portfolio/%s/assets/%s", userID, assetID), nil, nil)
}

// Goals returns the goals of a user, none on failure.
func (c *Client) Goals(ctx context.Context, userID string) []finpredictor.Goal {
	goals := []finpredictor.Goal{}
	if err := c.do(ctx, http.MethodGet, userPath("/api/goals/%s", userID), nil, &goals); err != nil {
		log.Printf("goals of %q: %v", userID, err)
		return []finpredictor.Goal{}
	}
	return goals
}

// CreateGoal creates a goal for a user.
func (c *Client) CreateGoal(ctx context.Context, userID string, in finpredictor.GoalCreate) (finpredictor.Goal, error) {
	var g finpredictor.Goal
	err := c.do(ctx, http.MethodPost, userPath("/api/goals/%s", userID), in, &g)
	return g, err
}

// DeleteGoal removes a goal of a user.
func (c *Client) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return c.do(ctx, http.MethodDelete, userPath("/api/goals/%s/%s", userID, goalID), nil, nil)
}

// Predict returns AI insights, none on failure.
func (c *Client) Predict(ctx context.Context, req finpredictor.PredictionRequest) finpredictor.Prediction {
	var p finpredictor.Prediction
	if err := c.do(ctx, http.MethodPost, "/api/ai/predict", req, &p); err != nil {
		log.Printf("insights of %q: %v", req.UserID, err)
		return finpredictor.Prediction{Recommendations: []finpredictor.Insight{}}
	}
	return p
}

// ProjectionResult is a projection computed by the server.
type ProjectionResult struct {
	Points     finpredictor.Projection `json:"points"`
	FinalValue float64                 `json:"final_value"`
}

// Project asks the server for a projection in view.
func (c *Client) Project(ctx context.Context, req finpredictor.Request, view finpredictor.View) (ProjectionResult, error) {
	var r ProjectionResult
	path := "/api/projection"
	if view != "" {
		path += "?view=" + url.QueryEscape(string(view))
	}
	err := c.do(ctx, http.MethodPost, path, req, &r)
	return r, err
}
