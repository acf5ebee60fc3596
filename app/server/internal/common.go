// Package internal provides shared utilities for server subpackages.
package internal

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/umputun/shelf/app/blog"
	"github.com/umputun/shelf/app/enum"
)

// ParseFilters reads post filters from query parameters: category, tag (repeatable
// or comma separated), min_rating, q, sort and order. Invalid values are ignored.
func ParseFilters(q url.Values) blog.Filters {
	f := blog.Filters{
		Category: strings.TrimSpace(q.Get("category")),
		Query:    strings.TrimSpace(q.Get("q")),
	}
	for _, raw := range q["tag"] {
		for t := range strings.SplitSeq(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.Tags = append(f.Tags, t)
			}
		}
	}
	if r, err := strconv.Atoi(q.Get("min_rating")); err == nil && r > 0 && r <= blog.MaxRating {
		f.MinRating = r
	}
	if s, err := enum.ParseSortBy(q.Get("sort")); err == nil {
		f.SortBy = s
	}
	f.SortOrder = enum.SortOrderDesc
	if o, err := enum.ParseSortOrder(q.Get("order")); err == nil {
		f.SortOrder = o
	}
	return f
}

// ParsePositive returns the query parameter as a positive int, or def.
func ParsePositive(q url.Values, name string, def int) int {
	if v, err := strconv.Atoi(q.Get(name)); err == nil && v > 0 {
		return v
	}
	return def
}

// NormalizeID trims spaces and slashes around a path id.
func NormalizeID(id string) string {
	return strings.Trim(strings.TrimSpace(id), "/")
}
