package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/contentapi-io/cda-client/internal/http"
	"github.com/contentapi-io/cda-client/pkg/cda"
)

// EntriesClient implements cda.EntriesClient.
type EntriesClient struct {
	httpClient *http.Client
	space      string
}

// NewEntriesClient creates a new entries client.
func NewEntriesClient(httpClient *http.Client, space string) *EntriesClient {
	return &EntriesClient{
		httpClient: httpClient,
		space:      space,
	}
}

func (c *EntriesClient) collectionPath() string {
	return fmt.Sprintf("/spaces/%s/entries", c.space)
}

func (c *EntriesClient) itemPath(entryID string) string {
	return fmt.Sprintf("/spaces/%s/entries/%s", c.space, entryID)
}

// Get implements cda.EntriesClient.Get.
func (c *EntriesClient) Get(ctx context.Context, entryID string) (*cda.Entry, error) {
	entry, err := getResource(ctx, c.httpClient, c.itemPath(entryID), nil, validateEntry)
	if err != nil {
		return nil, fmt.Errorf("getting entry: %w", err)
	}

	return entry, nil
}

// List implements cda.EntriesClient.List.
func (c *EntriesClient) List(ctx context.Context, params *cda.QueryParams) (*cda.EntryCollection, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	collection, err := getResource(ctx, c.httpClient, c.collectionPath(), query, collectionValidator(validateEntry))
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	return collection, nil
}

// Fetch implements cda.EntriesClient.Fetch.
func (c *EntriesClient) Fetch(entryID string, completion func(cda.Result[cda.Entry])) *cda.Operation {
	return fetchResource(c.httpClient, c.itemPath(entryID), nil, validateEntry, completion)
}

// FetchSignal implements cda.EntriesClient.FetchSignal.
func (c *EntriesClient) FetchSignal(entryID string) (*cda.Operation, *cda.Signal[cda.Entry]) {
	return cda.SignalFetch(func(completion func(cda.Result[cda.Entry])) *cda.Operation {
		return c.Fetch(entryID, completion)
	})
}

// FetchAll implements cda.EntriesClient.FetchAll.
func (c *EntriesClient) FetchAll(params *cda.QueryParams, completion func(cda.Result[cda.EntryCollection])) *cda.Operation {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	return fetchResource(c.httpClient, c.collectionPath(), query, collectionValidator(validateEntry), completion)
}

// FetchAllSignal implements cda.EntriesClient.FetchAllSignal.
func (c *EntriesClient) FetchAllSignal(params *cda.QueryParams) (*cda.Operation, *cda.Signal[cda.EntryCollection]) {
	return cda.SignalFetch(func(completion func(cda.Result[cda.EntryCollection])) *cda.Operation {
		return c.FetchAll(params, completion)
	})
}
