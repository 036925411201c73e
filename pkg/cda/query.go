package cda

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// QueryParams represents query parameters for collection requests. Values
// are serialized with type-specific rules: dates render as RFC 3339 UTC
// strings, lists join their elements with commas, and everything else uses
// its default string form. An empty QueryParams produces no query string.
type QueryParams struct {
	ContentType string
	Query       string
	Order       string
	Limit       int
	Skip        int
	Filters     map[string][]string
	DateFilters map[string]time.Time
}

// NewQueryParams creates a new QueryParams instance.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters:     make(map[string][]string),
		DateFilters: make(map[string]time.Time),
	}
}

// WithContentType restricts results to entries of the given content type.
func (q *QueryParams) WithContentType(contentTypeID string) *QueryParams {
	q.ContentType = contentTypeID

	return q
}

// WithQuery sets a full-text search query.
func (q *QueryParams) WithQuery(text string) *QueryParams {
	q.Query = text

	return q
}

// WithOrder sets the ordering attribute (prefix with "-" for descending).
func (q *QueryParams) WithOrder(order string) *QueryParams {
	q.Order = order

	return q
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithSkip sets the number of items to skip.
func (q *QueryParams) WithSkip(skip int) *QueryParams {
	q.Skip = skip

	return q
}

// WithFilter appends values to a named filter. Multiple values for the same
// name encode as a single comma-joined query value.
func (q *QueryParams) WithFilter(name string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[name] = append(q.Filters[name], values...)

	return q
}

// WithDateFilter sets a date-valued parameter, encoded as RFC 3339 UTC.
func (q *QueryParams) WithDateFilter(name string, value time.Time) *QueryParams {
	if q.DateFilters == nil {
		q.DateFilters = make(map[string]time.Time)
	}

	q.DateFilters[name] = value

	return q
}

// ToValues converts QueryParams to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.ContentType != "" {
		values.Set("content_type", q.ContentType)
	}

	if q.Query != "" {
		values.Set("query", q.Query)
	}

	if q.Order != "" {
		values.Set("order", q.Order)
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Skip > 0 {
		values.Set("skip", strconv.Itoa(q.Skip))
	}

	for name, filterValues := range q.Filters {
		if len(filterValues) > 0 {
			values.Set(name, strings.Join(filterValues, ","))
		}
	}

	for name, date := range q.DateFilters {
		values.Set(name, date.UTC().Format(time.RFC3339))
	}

	return values
}
