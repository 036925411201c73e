package cda_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/contentapi-io/cda-client/pkg/cda"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *cda.QueryParams
		expected url.Values
	}{
		{
			name:     "empty params",
			params:   cda.NewQueryParams(),
			expected: url.Values{},
		},
		{
			name: "with paging",
			params: &cda.QueryParams{
				Limit: 50,
				Skip:  100,
			},
			expected: url.Values{
				"limit": []string{"50"},
				"skip":  []string{"100"},
			},
		},
		{
			name: "with content type",
			params: &cda.QueryParams{
				ContentType: "article",
			},
			expected: url.Values{
				"content_type": []string{"article"},
			},
		},
		{
			name: "with ordering",
			params: &cda.QueryParams{
				Order: "-sys.createdAt",
			},
			expected: url.Values{
				"order": []string{"-sys.createdAt"},
			},
		},
		{
			name: "with full-text query",
			params: &cda.QueryParams{
				Query: "mountain bike",
			},
			expected: url.Values{
				"query": []string{"mountain bike"},
			},
		},
		{
			name: "list filter joins with commas",
			params: &cda.QueryParams{
				Filters: map[string][]string{
					"tags": {"a", "b", "c"},
				},
			},
			expected: url.Values{
				"tags": []string{"a,b,c"},
			},
		},
		{
			name: "date filter encodes as RFC 3339 UTC",
			params: &cda.QueryParams{
				DateFilters: map[string]time.Time{
					"since": time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				},
			},
			expected: url.Values{
				"since": []string{"2020-01-01T00:00:00Z"},
			},
		},
		{
			name: "date filter normalizes zone to UTC",
			params: &cda.QueryParams{
				DateFilters: map[string]time.Time{
					"until": time.Date(2020, 6, 1, 14, 30, 0, 0, time.FixedZone("CEST", 2*60*60)),
				},
			},
			expected: url.Values{
				"until": []string{"2020-06-01T12:30:00Z"},
			},
		},
		{
			name: "with all options",
			params: &cda.QueryParams{
				ContentType: "article",
				Order:       "sys.updatedAt",
				Limit:       25,
				Skip:        50,
				Filters: map[string][]string{
					"fields.category": {"news", "sport"},
				},
				DateFilters: map[string]time.Time{
					"sys.updatedAt[gte]": time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC),
				},
			},
			expected: url.Values{
				"content_type":       []string{"article"},
				"order":              []string{"sys.updatedAt"},
				"limit":              []string{"25"},
				"skip":               []string{"50"},
				"fields.category":    []string{"news,sport"},
				"sys.updatedAt[gte]": []string{"2021-03-04T05:06:07Z"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := tt.params.ToValues()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestQueryParams_Builders(t *testing.T) {
	t.Parallel()
	t.Run("chaining methods", func(t *testing.T) {
		t.Parallel()

		since := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		params := cda.NewQueryParams().
			WithContentType("article").
			WithQuery("bike").
			WithOrder("-sys.updatedAt").
			WithLimit(100).
			WithSkip(20).
			WithFilter("tags", "a").
			WithFilter("tags", "b", "c").
			WithDateFilter("since", since)

		values := params.ToValues()

		assert.Equal(t, "article", values.Get("content_type"))
		assert.Equal(t, "bike", values.Get("query"))
		assert.Equal(t, "-sys.updatedAt", values.Get("order"))
		assert.Equal(t, "100", values.Get("limit"))
		assert.Equal(t, "20", values.Get("skip"))
		assert.Equal(t, "a,b,c", values.Get("tags"))
		assert.Equal(t, "2020-01-01T00:00:00Z", values.Get("since"))
	})

	t.Run("WithFilter appends", func(t *testing.T) {
		t.Parallel()

		params := cda.NewQueryParams().
			WithFilter("tags", "a").
			WithFilter("tags", "b", "c")

		assert.Equal(t, []string{"a", "b", "c"}, params.Filters["tags"])
	})

	t.Run("empty mapping produces no query string", func(t *testing.T) {
		t.Parallel()

		values := cda.NewQueryParams().ToValues()

		assert.Empty(t, values.Encode())
	})
}

func TestNewQueryParams(t *testing.T) {
	t.Parallel()

	params := cda.NewQueryParams()

	assert.NotNil(t, params)
	assert.NotNil(t, params.Filters)
	assert.NotNil(t, params.DateFilters)
	assert.Equal(t, 0, params.Limit)
	assert.Equal(t, 0, params.Skip)
	assert.Empty(t, params.ContentType)
	assert.Empty(t, params.Order)
}
