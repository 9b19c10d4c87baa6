package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/utils"
	"github.com/culturemesh/accounts/models"
)

type httpAccountsClient struct {
	client *utils.HTTPClient

	apiKey string
	token  string

	logger *logger.Logger
}

// NewHTTPAccountsClient constructs an HTTP/REST implementation of
// [AccountsClient]. It normalises and validates the base URL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
// apiKey may be empty when the administrative surface is not used.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPAccountsClient(address, apiKey string, timeout time.Duration, logger *logger.Logger) (AccountsClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid accounts server address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpAccountsClient{client: client, apiKey: apiKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AccountsClient]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpAccountsClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [AccountsClient].
func (h *httpAccountsClient) Token() string {
	return h.token
}

// Register implements [AccountsClient]. It POSTs the registration payload to
// POST /api/users and returns the created account summary.
func (h *httpAccountsClient) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var created models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/users")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return created, nil
}

// ObtainToken implements [AccountsClient]. It GETs /api/token with Basic
// credentials and stores the returned bearer token via SetToken.
func (h *httpAccountsClient) ObtainToken(ctx context.Context, username, password string) (models.TokenResponse, error) {
	var issued models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(username, password).
		SetResult(&issued).
		Get("/api/token")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	h.SetToken(issued.Token)
	return issued, nil
}

// Resource implements [AccountsClient]. It GETs /api/resource with the stored
// bearer token.
func (h *httpAccountsClient) Resource(ctx context.Context) (models.ResourceResponse, error) {
	var resource models.ResourceResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token).
		SetResult(&resource).
		Get("/api/resource")
	if err != nil {
		return models.ResourceResponse{}, fmt.Errorf("resource request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResourceResponse{}, err
	}

	return resource, nil
}

// Profile implements [AccountsClient]. It GETs /api/users/{id}.
func (h *httpAccountsClient) Profile(ctx context.Context, userID int64) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&profile).
		Get("/api/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

// Ping implements [AccountsClient]. It GETs /ping with the configured api key.
func (h *httpAccountsClient) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", h.apiKey).
		Get("/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

// QueryUsers implements [AccountsClient]. It GETs /users with the configured
// api key, passing the non-zero filter fields as query parameters.
func (h *httpAccountsClient) QueryUsers(ctx context.Context, filter models.UserFilter) (models.UserQueryResponse, error) {
	var result models.UserQueryResponse

	request := h.client.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", h.apiKey).
		SetResult(&result)

	if filter.Login != "" {
		request.SetQueryParam("login", filter.Login)
	}
	if filter.Email != "" {
		request.SetQueryParam("email", filter.Email)
	}
	if filter.Limit > 0 {
		request.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}

	resp, err := request.Get("/users")
	if err != nil {
		return models.UserQueryResponse{}, fmt.Errorf("user query request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserQueryResponse{}, err
	}

	return result, nil
}
