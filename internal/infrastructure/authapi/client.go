// Package authapi is the HTTP client for the remote authentication service.
//
//	POST {base}/api/user/login     {"mail","password"} → {"data":{"_id","mail"}}
//	POST {base}/api/user/register  {"mail","password"} → {"data":{"_id","mail"}}
//
// Non-2xx responses may carry {"message": "..."}.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/financeassistant/authform/internal/core/domain"
)

const (
	LoginPath    = "/api/user/login"
	RegisterPath = "/api/user/register"

	maxBodyBytes = 1 << 20
)

const msgMissingUserData = "malformed response: missing user data"

// Client implements ports.AuthClient over HTTP + JSON.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient returns a Client for baseURL. A nil httpClient means a client
// without a timeout.
func NewClient(baseURL string, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

type userPayload struct {
	ID   string `json:"_id"`
	Mail string `json:"mail"`
}

type successBody struct {
	Data *userPayload `json:"data"`
}

type failureBody struct {
	Message string `json:"message"`
}

// Endpoint returns the URL targeted for mode.
func (c *Client) Endpoint(mode domain.FormMode) string {
	if mode == domain.ModeSignUp {
		return c.baseURL + RegisterPath
	}
	return c.baseURL + LoginPath
}

// Authenticate issues exactly one POST and maps the response to an AuthResult.
// Transport failures and undecodable success bodies become failures carrying
// the error text.
func (c *Client) Authenticate(ctx context.Context, mode domain.FormMode, creds domain.Credentials) domain.AuthResult {
	url := c.Endpoint(mode)

	body, err := json.Marshal(creds)
	if err != nil {
		return domain.Failed(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.Failed(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("auth request failed")
		return domain.Failed(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Failed(fmt.Sprintf("read response: %v", err))
	}

	c.log.Debug().Str("url", url).Int("status", resp.StatusCode).Msg("auth response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var fb failureBody
		_ = json.Unmarshal(raw, &fb)
		return domain.Failed(fb.Message)
	}

	var sb successBody
	if err := json.Unmarshal(raw, &sb); err != nil {
		return domain.Failed(fmt.Sprintf("decode response: %v", err))
	}
	if sb.Data == nil || sb.Data.ID == "" {
		return domain.Failed(msgMissingUserData)
	}
	return domain.Succeeded(domain.IdentityRecord{ID: sb.Data.ID, Email: sb.Data.Mail})
}
