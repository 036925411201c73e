package client

import (
	"context"
	"fmt"

	"github.com/contentapi-io/cda-client/internal/http"
	"github.com/contentapi-io/cda-client/pkg/cda"
)

// SpacesClient implements cda.SpacesClient.
type SpacesClient struct {
	httpClient *http.Client
	space      string
}

// NewSpacesClient creates a new spaces client.
func NewSpacesClient(httpClient *http.Client, space string) *SpacesClient {
	return &SpacesClient{
		httpClient: httpClient,
		space:      space,
	}
}

// path is the space root: an empty resource fragment.
func (c *SpacesClient) path() string {
	return fmt.Sprintf("/spaces/%s", c.space)
}

// Get implements cda.SpacesClient.Get.
func (c *SpacesClient) Get(ctx context.Context) (*cda.Space, error) {
	space, err := getResource(ctx, c.httpClient, c.path(), nil, validateSpace)
	if err != nil {
		return nil, fmt.Errorf("getting space: %w", err)
	}

	return space, nil
}

// Fetch implements cda.SpacesClient.Fetch.
func (c *SpacesClient) Fetch(completion func(cda.Result[cda.Space])) *cda.Operation {
	return fetchResource(c.httpClient, c.path(), nil, validateSpace, completion)
}

// FetchSignal implements cda.SpacesClient.FetchSignal.
func (c *SpacesClient) FetchSignal() (*cda.Operation, *cda.Signal[cda.Space]) {
	return cda.SignalFetch(func(completion func(cda.Result[cda.Space])) *cda.Operation {
		return c.Fetch(completion)
	})
}
