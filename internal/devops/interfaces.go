package devops

import "context"

// APIClient defines the HTTP access the aggregator needs
type APIClient interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// Ensure Client implements APIClient interface
var _ APIClient = (*Client)(nil)
