package webapp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// APIClient talks to the API tier. Every call ends in exactly one of three
// states: a transport failure (non-nil error, no response reached), a
// response carrying a non-success status, or a success. The first two must
// never be conflated by callers.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type apiResponse struct {
	status int
	body   []byte
}

func (client *APIClient) do(req *http.Request) (apiResponse, error) {
	resp, err := client.httpClient.Do(req)
	if err != nil {
		return apiResponse{}, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiResponse{}, err
	}

	return apiResponse{status: resp.StatusCode, body: body}, nil
}

func (client *APIClient) get(ctx context.Context, path string, query url.Values) (apiResponse, error) {
	fullURL := client.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return apiResponse{}, err
	}

	return client.do(req)
}

func (client *APIClient) postJSON(ctx context.Context, path string, payload any, authorization string) (apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return apiResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return apiResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	return client.do(req)
}
