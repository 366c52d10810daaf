package devops

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{
		BaseURL:   server.URL,
		PAT:       "my-pat",
		Transport: server.Client().Transport,
	})
	require.NoError(t, err)

	return client, server
}

func TestBasicAuthorization(t *testing.T) {
	// base64(":my-pat")
	assert.Equal(t, "Basic Om15LXBhdA==", BasicAuthorization("my-pat"))
}

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name          string
		opts          ClientOptions
		errorContains string
	}{
		{
			name:          "missing base URL",
			opts:          ClientOptions{PAT: "x"},
			errorContains: "invalid base URL",
		},
		{
			name:          "relative base URL",
			opts:          ClientOptions{BaseURL: "dev.azure.com", PAT: "x"},
			errorContains: "invalid base URL",
		},
		{
			name:          "missing token",
			opts:          ClientOptions{BaseURL: "https://dev.azure.com"},
			errorContains: "personal access token is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.opts)
			require.Error(t, err)
			assert.Nil(t, client)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestClient_Get_SendsHeadersAndReturnsBody(t *testing.T) {
	var gotAccept, gotAuth, gotQuery string
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":[]}`))
	}))

	repo := Repository{BaseURL: server.URL, Organization: "org", Project: "proj", ID: "repo", APIVersion: "6.0"}
	body, err := client.Get(context.Background(), repo.ReviewersURL(7))

	require.NoError(t, err)
	assert.JSONEq(t, `{"value":[]}`, string(body))
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, BasicAuthorization("my-pat"), gotAuth)
	assert.Equal(t, "api-version=6.0", gotQuery)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestClient_Get_AuthorizationSentForBaseURLWithPort(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "on-premises server with port", baseURL: "http://tfs:8080/tfs"},
		{name: "https with explicit port", baseURL: "https://devops.example.com:8443"},
		{name: "no port", baseURL: "https://dev.azure.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			client, err := NewClient(ClientOptions{
				BaseURL: tt.baseURL,
				PAT:     "my-pat",
				Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
					gotAuth = req.Header.Get("Authorization")
					return &http.Response{
						StatusCode: http.StatusOK,
						Header:     http.Header{"Content-Type": []string{"application/json"}},
						Body:       io.NopCloser(strings.NewReader(`{"value":[]}`)),
						Request:    req,
					}, nil
				}),
			})
			require.NoError(t, err)

			repo := Repository{BaseURL: tt.baseURL, Organization: "org", Project: "proj", ID: "repo", APIVersion: "6.0"}
			_, err = client.Get(context.Background(), repo.CompletedPullRequestsURL(10))

			require.NoError(t, err)
			assert.Equal(t, BasicAuthorization("my-pat"), gotAuth)
		})
	}
}

func TestClient_Get_Non2xxIsHTTPError(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"TF401019: repository not found"}`))
	}))

	body, err := client.Get(context.Background(), server.URL+"/org/proj/_apis/git/repositories/x/pullrequests")

	require.Error(t, err)
	assert.Nil(t, body)
	var httpErr *api.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestClient_Get_TransportError(t *testing.T) {
	client, server := newTestClient(t, http.NotFoundHandler())
	url := server.URL + "/anything"
	server.Close()

	_, err := client.Get(context.Background(), url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch")
}
