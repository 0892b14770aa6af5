// Package supabase is a minimal client for the Supabase PostgREST and
// Storage HTTP APIs. It covers only what this service needs: single-table
// select/insert/update/delete with eq filters and composite ordering, plus
// streaming object uploads. No retries, no pagination.
package supabase

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	restTimeout    = 10 * time.Second
	connectTimeout = 5 * time.Second
)

// Client holds the base URL, credentials and default headers shared by all
// query builders. The header map itself is never handed to a builder by
// reference; each builder gets its own copy.
type Client struct {
	BaseURL string
	Key     string

	headers map[string]string
	rest    *resty.Client
	upload  *http.Client
}

// NewClient creates a client for the given Supabase project URL and API key.
func NewClient(baseURL, key string) *Client {
	return NewClientWithUploadTimeout(baseURL, key, 10*time.Minute)
}

// NewClientWithUploadTimeout allows tuning the extended timeout used for
// storage uploads (large files need far more than the table-call budget).
func NewClientWithUploadTimeout(baseURL, key string, uploadTimeout time.Duration) *Client {
	rest := resty.New().
		SetTimeout(restTimeout).
		SetTransport(&http.Transport{
			DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
		}).
		SetRetryCount(0)

	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Key:     key,
		headers: map[string]string{
			"apikey":        key,
			"Authorization": "Bearer " + key,
			"Content-Type":  "application/json",
			"Prefer":        "return=representation",
		},
		rest: rest,
		upload: &http.Client{
			Timeout: uploadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: time.Minute}).DialContext,
			},
		},
	}
}

// Table starts a query against the given table (or view). The builder owns
// an independent copy of the default headers, so per-query header changes
// (e.g. Single) never leak back into the client.
func (c *Client) Table(name string) *QueryBuilder {
	headers := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		headers[k] = v
	}
	return &QueryBuilder{
		client:  c,
		table:   name,
		headers: headers,
		params:  map[string]string{},
		method:  http.MethodGet,
	}
}

// Upload streams body to the storage endpoint and returns the public URL of
// the uploaded object. This path uses net/http directly: the body must not
// be buffered in memory, and resty reads io.Reader bodies fully before
// sending. http.Client streams the reader as-is.
func (c *Client) Upload(bucket, key, contentType string, body io.Reader) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.BaseURL, bucket, key)

	req, err := http.NewRequest(http.MethodPost, uploadURL, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.Key)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.upload.Do(req)
	if err != nil {
		return "", &ConnError{Op: "storage upload", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ConnError{Op: "storage upload", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", newAPIError(resp.StatusCode, respBody)
	}

	return c.PublicURL(bucket, key), nil
}

// PublicURL returns the public download URL for an object.
func (c *Client) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.BaseURL, bucket, key)
}
