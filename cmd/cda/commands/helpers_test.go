package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentapi-io/cda-client/pkg/cda"
)

func TestParseFilters(t *testing.T) {
	t.Parallel()
	t.Run("single filter", func(t *testing.T) {
		t.Parallel()

		params := cda.NewQueryParams()

		err := parseFilters(params, []string{"fields.category=news"})
		require.NoError(t, err)
		assert.Equal(t, []string{"news"}, params.Filters["fields.category"])
	})

	t.Run("comma-separated values", func(t *testing.T) {
		t.Parallel()

		params := cda.NewQueryParams()

		err := parseFilters(params, []string{"tags=a,b,c"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, params.Filters["tags"])
	})

	t.Run("multiple filters", func(t *testing.T) {
		t.Parallel()

		params := cda.NewQueryParams()

		err := parseFilters(params, []string{"tags=a", "fields.category=news"})
		require.NoError(t, err)
		assert.Len(t, params.Filters, 2)
	})

	t.Run("missing separator", func(t *testing.T) {
		t.Parallel()

		err := parseFilters(cda.NewQueryParams(), []string{"tags"})
		require.ErrorIs(t, err, ErrInvalidFilterFormat)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		err := parseFilters(cda.NewQueryParams(), []string{"=value"})
		require.ErrorIs(t, err, ErrInvalidFilterFormat)
	})
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	assert.Empty(t, formatTimestamp(time.Time{}))
	assert.Equal(t, "2024-03-04 05:06:07",
		formatTimestamp(time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)))
}
