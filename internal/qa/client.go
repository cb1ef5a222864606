package qa

import (
	"fmt"
	"net/http"
	"net/url"
)

// HTTPClient is the part of *http.Client the answer client needs
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the remote question endpoint
type Client struct {
	httpClient HTTPClient
	endpoint   string
}

// NewClient creates a new answer client for endpoint.
// A nil httpClient means a plain *http.Client with no timeout.
func NewClient(endpoint string, httpClient HTTPClient) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("endpoint must be an absolute http(s) URL, got %q", endpoint)
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
	}, nil
}

// Endpoint returns the question endpoint URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// BackendAddress returns the scheme and host of the endpoint, e.g.
// "http://127.0.0.1:5000/". It is what users are told to check when a
// question fails.
func (c *Client) BackendAddress() string {
	return BackendAddress(c.endpoint)
}

// BackendAddress strips the path, query and fragment from endpoint
func BackendAddress(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}).String()
}
