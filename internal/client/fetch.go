package client

import (
	"context"
	"net/url"

	"github.com/contentapi-io/cda-client/internal/http"
	"github.com/contentapi-io/cda-client/pkg/cda"
)

// getResource performs one blocking fetch-decode round trip.
func getResource[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values, validate func(*T) error) (*T, error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	return decodeResource(resp.Body, validate)
}

// fetchResource is the single asynchronous operation behind every facade
// method: validate the URL, dispatch the GET on its own goroutine, decode,
// and deliver through completion. An invalid URL completes immediately
// with no network activity and a nil cancellation handle.
func fetchResource[T any](httpClient *http.Client, path string, query url.Values, validate func(*T) error, completion func(cda.Result[T])) *cda.Operation {
	_, err := httpClient.URL(path, query)
	if err != nil {
		completion(cda.Failure[T](err))

		return nil
	}

	return cda.Fetch(func(ctx context.Context) (*T, error) {
		return getResource(ctx, httpClient, path, query, validate)
	}, completion)
}
