package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentapi-io/cda-client/internal/client"
	"github.com/contentapi-io/cda-client/pkg/cda"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires space id", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&cda.Config{AccessToken: "tok"}, "https://cdn.example.com")
		require.ErrorIs(t, err, cda.ErrSpaceIDRequired)
	})

	t.Run("wires all resource clients", func(t *testing.T) {
		t.Parallel()

		deliveryClient, err := client.New(&cda.Config{
			SpaceID:     "abc",
			AccessToken: "tok",
		}, "https://cdn.example.com")
		require.NoError(t, err)

		assert.NotNil(t, deliveryClient.Spaces())
		assert.NotNil(t, deliveryClient.ContentTypes())
		assert.NotNil(t, deliveryClient.Entries())
		assert.NotNil(t, deliveryClient.Assets())
	})

	t.Run("sends configured user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "my-agent/1.0", request.Header.Get("User-Agent"))
			_, _ = writer.Write([]byte(`{"sys":{"id":"abc"},"name":"Example Space"}`))
		}))
		defer server.Close()

		deliveryClient, err := client.New(&cda.Config{
			SpaceID:     "abc",
			AccessToken: "tok",
			UserAgent:   "my-agent/1.0",
		}, server.URL)
		require.NoError(t, err)

		_, err = deliveryClient.Spaces().Get(context.Background())
		require.NoError(t, err)
	})
}
