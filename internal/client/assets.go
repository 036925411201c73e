package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/contentapi-io/cda-client/internal/http"
	"github.com/contentapi-io/cda-client/pkg/cda"
)

// AssetsClient implements cda.AssetsClient.
type AssetsClient struct {
	httpClient *http.Client
	space      string
}

// NewAssetsClient creates a new assets client.
func NewAssetsClient(httpClient *http.Client, space string) *AssetsClient {
	return &AssetsClient{
		httpClient: httpClient,
		space:      space,
	}
}

func (c *AssetsClient) collectionPath() string {
	return fmt.Sprintf("/spaces/%s/assets", c.space)
}

func (c *AssetsClient) itemPath(assetID string) string {
	return fmt.Sprintf("/spaces/%s/assets/%s", c.space, assetID)
}

// Get implements cda.AssetsClient.Get.
func (c *AssetsClient) Get(ctx context.Context, assetID string) (*cda.Asset, error) {
	asset, err := getResource(ctx, c.httpClient, c.itemPath(assetID), nil, validateAsset)
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return asset, nil
}

// List implements cda.AssetsClient.List.
func (c *AssetsClient) List(ctx context.Context, params *cda.QueryParams) (*cda.AssetCollection, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	collection, err := getResource(ctx, c.httpClient, c.collectionPath(), query, collectionValidator(validateAsset))
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	return collection, nil
}

// Fetch implements cda.AssetsClient.Fetch.
func (c *AssetsClient) Fetch(assetID string, completion func(cda.Result[cda.Asset])) *cda.Operation {
	return fetchResource(c.httpClient, c.itemPath(assetID), nil, validateAsset, completion)
}

// FetchSignal implements cda.AssetsClient.FetchSignal.
func (c *AssetsClient) FetchSignal(assetID string) (*cda.Operation, *cda.Signal[cda.Asset]) {
	return cda.SignalFetch(func(completion func(cda.Result[cda.Asset])) *cda.Operation {
		return c.Fetch(assetID, completion)
	})
}

// FetchAll implements cda.AssetsClient.FetchAll.
func (c *AssetsClient) FetchAll(params *cda.QueryParams, completion func(cda.Result[cda.AssetCollection])) *cda.Operation {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	return fetchResource(c.httpClient, c.collectionPath(), query, collectionValidator(validateAsset), completion)
}

// FetchAllSignal implements cda.AssetsClient.FetchAllSignal.
func (c *AssetsClient) FetchAllSignal(params *cda.QueryParams) (*cda.Operation, *cda.Signal[cda.AssetCollection]) {
	return cda.SignalFetch(func(completion func(cda.Result[cda.AssetCollection])) *cda.Operation {
		return c.FetchAll(params, completion)
	})
}
