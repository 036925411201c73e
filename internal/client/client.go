// Package client implements the cda.Client resource facade on top of the
// HTTP transport: URL construction for the space-scoped resource
// hierarchy, the JSON decode pipeline, and the callback/signal delivery
// adapters.
package client

import (
	"github.com/contentapi-io/cda-client/internal/constants"
	"github.com/contentapi-io/cda-client/internal/http"
	"github.com/contentapi-io/cda-client/pkg/cda"
)

// Client implements the cda.Client interface.
type Client struct {
	httpClient *http.Client
	space      string
	logger     cda.Logger

	spaces       cda.SpacesClient
	contentTypes cda.ContentTypesClient
	entries      cda.EntriesClient
	assets       cda.AssetsClient
}

// New creates a new delivery API client. The endpoint must already be
// normalized to "scheme://host" (see cdaclient.NewWithConfig).
func New(config *cda.Config, endpoint string) (*Client, error) {
	if config.SpaceID == "" {
		return nil, cda.ErrSpaceIDRequired
	}

	httpClient := http.NewClient(endpoint, config.AccessToken, httpClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		space:      config.SpaceID,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpClientOptions builds HTTP client options from config.
func httpClientOptions(config *cda.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.spaces = NewSpacesClient(c.httpClient, c.space)
	c.contentTypes = NewContentTypesClient(c.httpClient, c.space)
	c.entries = NewEntriesClient(c.httpClient, c.space)
	c.assets = NewAssetsClient(c.httpClient, c.space)
}

// Spaces implements cda.Client.Spaces.
func (c *Client) Spaces() cda.SpacesClient {
	return c.spaces
}

// ContentTypes implements cda.Client.ContentTypes.
func (c *Client) ContentTypes() cda.ContentTypesClient {
	return c.contentTypes
}

// Entries implements cda.Client.Entries.
func (c *Client) Entries() cda.EntriesClient {
	return c.entries
}

// Assets implements cda.Client.Assets.
func (c *Client) Assets() cda.AssetsClient {
	return c.assets
}

// loggerAdapter adapts cda.Logger to http.Logger.
type loggerAdapter struct {
	logger cda.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
