package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/contentapi-io/cda-client/internal/http"
	"github.com/contentapi-io/cda-client/pkg/cda"
)

// ContentTypesClient implements cda.ContentTypesClient.
type ContentTypesClient struct {
	httpClient *http.Client
	space      string
}

// NewContentTypesClient creates a new content types client.
func NewContentTypesClient(httpClient *http.Client, space string) *ContentTypesClient {
	return &ContentTypesClient{
		httpClient: httpClient,
		space:      space,
	}
}

func (c *ContentTypesClient) collectionPath() string {
	return fmt.Sprintf("/spaces/%s/content_types", c.space)
}

func (c *ContentTypesClient) itemPath(contentTypeID string) string {
	return fmt.Sprintf("/spaces/%s/content_types/%s", c.space, contentTypeID)
}

// Get implements cda.ContentTypesClient.Get.
func (c *ContentTypesClient) Get(ctx context.Context, contentTypeID string) (*cda.ContentType, error) {
	contentType, err := getResource(ctx, c.httpClient, c.itemPath(contentTypeID), nil, validateContentType)
	if err != nil {
		return nil, fmt.Errorf("getting content type: %w", err)
	}

	return contentType, nil
}

// List implements cda.ContentTypesClient.List.
func (c *ContentTypesClient) List(ctx context.Context, params *cda.QueryParams) (*cda.ContentTypeCollection, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	collection, err := getResource(ctx, c.httpClient, c.collectionPath(), query, collectionValidator(validateContentType))
	if err != nil {
		return nil, fmt.Errorf("listing content types: %w", err)
	}

	return collection, nil
}

// Fetch implements cda.ContentTypesClient.Fetch.
func (c *ContentTypesClient) Fetch(contentTypeID string, completion func(cda.Result[cda.ContentType])) *cda.Operation {
	return fetchResource(c.httpClient, c.itemPath(contentTypeID), nil, validateContentType, completion)
}

// FetchSignal implements cda.ContentTypesClient.FetchSignal.
func (c *ContentTypesClient) FetchSignal(contentTypeID string) (*cda.Operation, *cda.Signal[cda.ContentType]) {
	return cda.SignalFetch(func(completion func(cda.Result[cda.ContentType])) *cda.Operation {
		return c.Fetch(contentTypeID, completion)
	})
}

// FetchAll implements cda.ContentTypesClient.FetchAll.
func (c *ContentTypesClient) FetchAll(params *cda.QueryParams, completion func(cda.Result[cda.ContentTypeCollection])) *cda.Operation {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	return fetchResource(c.httpClient, c.collectionPath(), query, collectionValidator(validateContentType), completion)
}

// FetchAllSignal implements cda.ContentTypesClient.FetchAllSignal.
func (c *ContentTypesClient) FetchAllSignal(params *cda.QueryParams) (*cda.Operation, *cda.Signal[cda.ContentTypeCollection]) {
	return cda.SignalFetch(func(completion func(cda.Result[cda.ContentTypeCollection])) *cda.Operation {
		return c.FetchAll(params, completion)
	})
}
