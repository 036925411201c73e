package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentapi-io/cda-client/pkg/cda"
)

func TestContentTypesClient_Get(t *testing.T) {
	t.Parallel()

	deliveryClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/spaces/abc/content_types/article", request.URL.Path)
		_, _ = writer.Write([]byte(`{
			"sys": {"id": "article", "type": "ContentType"},
			"name": "Article",
			"displayField": "title",
			"fields": [
				{"id": "title", "name": "Title", "type": "Symbol", "required": true},
				{"id": "body", "name": "Body", "type": "Text"}
			]
		}`))
	})

	contentType, err := deliveryClient.ContentTypes().Get(context.Background(), "article")
	require.NoError(t, err)
	assert.Equal(t, "article", contentType.Sys.ID)
	assert.Equal(t, "title", contentType.DisplayField)
	require.Len(t, contentType.Fields, 2)
	assert.True(t, contentType.Fields[0].Required)
}

func TestContentTypesClient_List(t *testing.T) {
	t.Parallel()

	deliveryClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/spaces/abc/content_types", request.URL.Path)

		response := cda.ContentTypeCollection{
			Total: 1,
			Items: []cda.ContentType{
				{Sys: cda.Sys{ID: "article"}, Name: "Article"},
			},
		}
		_ = json.NewEncoder(writer).Encode(response)
	})

	collection, err := deliveryClient.ContentTypes().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, collection.Total)
	require.Len(t, collection.Items, 1)
	assert.Equal(t, "Article", collection.Items[0].Name)
}

func TestContentTypesClient_Fetch(t *testing.T) {
	t.Parallel()

	deliveryClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`{"sys":{"id":"article"},"name":"Article"}`))
	})

	done := make(chan cda.Result[cda.ContentType], 1)

	op := deliveryClient.ContentTypes().Fetch("article", func(result cda.Result[cda.ContentType]) {
		done <- result
	})

	require.NotNil(t, op)

	result := <-done
	require.NoError(t, result.Err())
	assert.Equal(t, "article", result.Value().Sys.ID)
}
