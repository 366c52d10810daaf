package devops

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cli/go-gh/v2/pkg/api"
)

// Client wraps a go-gh REST client configured for Azure DevOps
type Client struct {
	rest *api.RESTClient
}

// ClientOptions configures NewClient
type ClientOptions struct {
	BaseURL   string
	PAT       string
	Transport http.RoundTripper
	// Log receives request/response traces when non-nil
	Log io.Writer
}

func NewClient(opts ClientOptions) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", opts.BaseURL)
	}
	if opts.PAT == "" {
		return nil, fmt.Errorf("personal access token is required")
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	// Host, AuthToken and Transport are all set so go-gh never falls back to
	// the gh CLI configuration. The Authorization header is fixed up front and
	// takes precedence over go-gh's token header. go-gh matches Host against
	// the request hostname, which carries no port.
	restClient, err := api.NewRESTClient(api.ClientOptions{
		Host:      base.Hostname(),
		AuthToken: opts.PAT,
		Headers: map[string]string{
			"Accept":        "application/json",
			"Authorization": BasicAuthorization(opts.PAT),
			"User-Agent":    "devops-pr-stats",
		},
		SkipDefaultHeaders: true,
		Transport:          transport,
		Log:                opts.Log,
		LogIgnoreEnv:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{rest: restClient}, nil
}

// BasicAuthorization builds the header value Azure DevOps expects for a PAT:
// an empty user name and the token as password.
func BasicAuthorization(pat string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(":"+pat))
}

// Get fetches rawURL and returns the response body. Non-2xx responses come
// back as *api.HTTPError.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := c.rest.RequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}
	return body, nil
}
