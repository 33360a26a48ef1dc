// services/collection_client.go
package services

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

	"social-connect-platform/utils"
)

// CollectionClient speaks the remote collection store's REST contract:
//
//	GET   /{collection}.json                      → key → record mapping
//	GET   /{collection}.json?orderBy=..&equalTo=.. → filtered mapping
//	POST  /{collection}.json                      → {"name": generated key}
//	PATCH /{collection}/{key}.json                → server-side field merge
//
// Every call is single-attempt: no retries, no backoff.
type CollectionClient struct {
	BaseURL string
	Client  *http.Client
}

func NewCollectionClient(baseURL string) *CollectionClient {
	return &CollectionClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  utils.HTTPClient,
	}
}

// GetCollection fetches an entire collection. An absent collection comes
// back from the store as JSON null; that decodes to an empty mapping here.
func (c *CollectionClient) GetCollection(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	return c.get(ctx, c.BaseURL+"/"+collection+".json")
}

// QueryEqual fetches the subset of a collection whose field equals value,
// using the store's quoted orderBy/equalTo query form.
func (c *CollectionClient) QueryEqual(ctx context.Context, collection, field, value string) (map[string]json.RawMessage, error) {
	q := url.Values{}
	q.Set("orderBy", `"`+field+`"`)
	q.Set("equalTo", `"`+value+`"`)
	return c.get(ctx, c.BaseURL+"/"+collection+".json?"+q.Encode())
}

// Push writes a new record and returns the store-generated key.
func (c *CollectionClient) Push(ctx context.Context, collection string, record interface{}) (string, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s record: %w", collection, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/"+collection+".json", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("store write to %s failed: %w", collection, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", storeError(resp, collection)
	}

	var out struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode store key for %s: %w", collection, err)
	}
	if out.Name == "" {
		return "", fmt.Errorf("store returned no key for %s write", collection)
	}
	return out.Name, nil
}

// Patch merges partial fields into an existing record server-side.
func (c *CollectionClient) Patch(ctx context.Context, collection, key string, partial interface{}) error {
	body, err := json.Marshal(partial)
	if err != nil {
		return fmt.Errorf("failed to encode %s patch: %w", collection, err)
	}

	target := fmt.Sprintf("%s/%s/%s.json", c.BaseURL, collection, key)
	req, err := http.NewRequestWithContext(ctx, "PATCH", target, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("store patch to %s/%s failed: %w", collection, key, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return storeError(resp, collection)
	}
	return nil
}

func (c *CollectionClient) get(ctx context.Context, target string) (map[string]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store fetch failed: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, storeError(resp, target)
	}

	var records map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode store response: %w", err)
	}
	if records == nil {
		records = map[string]json.RawMessage{}
	}
	return records, nil
}

func storeError(resp *http.Response, what string) error {
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if readErr != nil {
		log.Printf("⚠️ failed to read store error body for %s: %v", what, readErr)
	}
	return fmt.Errorf("store returned %d for %s: %s", resp.StatusCode, what, string(body))
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
