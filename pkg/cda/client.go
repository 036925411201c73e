package cda

import (
	"context"
	"time"
)

// Client is the resource facade of the content delivery API. Each accessor
// returns a resource-specific client; every fetch operation composes URL
// building, transport, decoding, and delivery into one call and holds no
// state of its own.
type Client interface {
	Spaces() SpacesClient
	ContentTypes() ContentTypesClient
	Entries() EntriesClient
	Assets() AssetsClient
}

// SpacesClient fetches the space the client is scoped to. The space is a
// single constrained resource: there is no by-identifier or collection
// variant.
type SpacesClient interface {
	Get(ctx context.Context) (*Space, error)
	Fetch(completion func(Result[Space])) *Operation
	FetchSignal() (*Operation, *Signal[Space])
}

// ContentTypesClient fetches content type schemas.
type ContentTypesClient interface {
	Get(ctx context.Context, contentTypeID string) (*ContentType, error)
	List(ctx context.Context, params *QueryParams) (*ContentTypeCollection, error)
	Fetch(contentTypeID string, completion func(Result[ContentType])) *Operation
	FetchSignal(contentTypeID string) (*Operation, *Signal[ContentType])
	FetchAll(params *QueryParams, completion func(Result[ContentTypeCollection])) *Operation
	FetchAllSignal(params *QueryParams) (*Operation, *Signal[ContentTypeCollection])
}

// EntriesClient fetches entries.
type EntriesClient interface {
	Get(ctx context.Context, entryID string) (*Entry, error)
	List(ctx context.Context, params *QueryParams) (*EntryCollection, error)
	Fetch(entryID string, completion func(Result[Entry])) *Operation
	FetchSignal(entryID string) (*Operation, *Signal[Entry])
	FetchAll(params *QueryParams, completion func(Result[EntryCollection])) *Operation
	FetchAllSignal(params *QueryParams) (*Operation, *Signal[EntryCollection])
}

// AssetsClient fetches assets.
type AssetsClient interface {
	Get(ctx context.Context, assetID string) (*Asset, error)
	List(ctx context.Context, params *QueryParams) (*AssetCollection, error)
	Fetch(assetID string, completion func(Result[Asset])) *Operation
	FetchSignal(assetID string) (*Operation, *Signal[Asset])
	FetchAll(params *QueryParams, completion func(Result[AssetCollection])) *Operation
	FetchAllSignal(params *QueryParams) (*Operation, *Signal[AssetCollection])
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cda.Client. All
// values are captured at construction and immutable thereafter; every
// request carries "Authorization: Bearer {AccessToken}".
type Config struct {
	// SpaceID scopes every request to one space. Required.
	SpaceID string
	// AccessToken is the bearer token fixed at construction. Required.
	AccessToken string

	// Server overrides the default API host. Host only, no scheme;
	// cdaclient.NewWithConfig normalizes a value that carries one.
	Server string
	// Insecure switches the connection to plain HTTP. Default is HTTPS.
	Insecure bool

	// HTTPTimeout bounds each request. Zero means the transport default.
	HTTPTimeout time.Duration
	// RetryMax is the maximum number of transport-level retries for
	// transient failures. Zero (the default) disables retries entirely;
	// the request pipeline itself never retries.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
