// Package cdaclient provides the main entry point for creating content
// delivery API clients.
package cdaclient

import (
	"fmt"
	"strings"

	"github.com/contentapi-io/cda-client/internal/client"
	"github.com/contentapi-io/cda-client/internal/constants"
	"github.com/contentapi-io/cda-client/pkg/cda"
)

// New creates a client scoped to a space, authorized with a fixed bearer
// token, against the default API host over HTTPS.
func New(spaceID, accessToken string) (cda.Client, error) {
	return NewWithConfig(&cda.Config{
		SpaceID:     spaceID,
		AccessToken: accessToken,
	})
}

// NewWithConfig creates a client from a full configuration.
func NewWithConfig(config *cda.Config) (cda.Client, error) {
	if config == nil {
		return nil, cda.ErrConfigRequired
	}

	if config.SpaceID == "" {
		return nil, cda.ErrSpaceIDRequired
	}

	if config.AccessToken == "" {
		return nil, cda.ErrAccessTokenRequired
	}

	delivery, err := client.New(config, Endpoint(config))
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return delivery, nil
}

// Endpoint normalizes the configured server into a "scheme://host" base
// URL. A scheme embedded in Server is stripped in favor of the Insecure
// flag, which alone decides between https and http.
func Endpoint(config *cda.Config) string {
	server := config.Server
	if server == "" {
		server = constants.DefaultServer
	}

	server = strings.TrimPrefix(server, "https://")
	server = strings.TrimPrefix(server, "http://")
	server = strings.TrimSuffix(server, "/")

	scheme := "https"
	if config.Insecure {
		scheme = "http"
	}

	return scheme + "://" + server
}
