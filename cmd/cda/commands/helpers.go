package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/contentapi-io/cda-client/pkg/cda"
	"github.com/contentapi-io/cda-client/pkg/cdaclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	timestampFormat = "2006-01-02 15:04:05"
)

// Common static errors used throughout the commands package.
var (
	ErrSpaceRequired       = errors.New("space identifier is required (use --space or CDA_SPACE)")
	ErrTokenRequired       = errors.New("access token is required (use --token or CDA_TOKEN)")
	ErrInvalidFilterFormat = errors.New("invalid filter format, expected name=value")
	ErrEntryNotFound       = errors.New("entry not found")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrContentTypeNotFound = errors.New("content type not found")
)

// createClient builds a delivery client from viper-resolved configuration.
// When no token is configured and stdin is a terminal, the user is prompted
// for one.
func createClient() (cda.Client, error) {
	space := viper.GetString("space")
	if space == "" {
		return nil, ErrSpaceRequired
	}

	token := viper.GetString("token")
	if token == "" {
		prompted, err := promptForToken()
		if err != nil {
			return nil, err
		}

		token = prompted
	}

	if token == "" {
		return nil, ErrTokenRequired
	}

	return cdaclient.NewWithConfig(&cda.Config{
		SpaceID:     space,
		AccessToken: token,
		Server:      viper.GetString("server"),
		Insecure:    viper.GetBool("insecure"),
		Debug:       viper.GetBool("verbose"),
	})
}

// promptForToken reads a token from the terminal without echoing it.
// Returns empty when stdin is not a terminal.
func promptForToken() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Fprint(os.Stderr, "Access token: ")

	raw, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	return strings.TrimSpace(string(raw)), nil
}

// renderJSON writes value to stdout as indented JSON.
func renderJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// renderYAML writes value to stdout as YAML.
func renderYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return encoder.Close()
}

// formatTimestamp renders a resource timestamp, or empty for the zero time.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(timestampFormat)
}

// parseFilters converts repeated name=value flags into query filters.
func parseFilters(params *cda.QueryParams, filters []string) error {
	for _, filter := range filters {
		name, value, found := strings.Cut(filter, "=")
		if !found || name == "" {
			return fmt.Errorf("%w: %q", ErrInvalidFilterFormat, filter)
		}

		params.WithFilter(name, strings.Split(value, ",")...)
	}

	return nil
}
