// Package http provides HTTP server and handler implementations.
//
// This file implements utilities for parsing and validating request data.

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"contabilidad/internal/core"
)

// ParseFilter reads the category query parameter. A missing or empty value
// selects every category; anything outside the closed set is an error.
func ParseFilter(query url.Values) (core.FilterState, error) {
	raw := strings.TrimSpace(query.Get("category"))
	if raw == "" {
		return core.FilterState{}, nil
	}
	c, err := core.ParseCategory(raw)
	if err != nil {
		return core.FilterState{}, err
	}
	return core.Select(c), nil
}

// ParseIDParam reads a non-negative movement ID path value.
func ParseIDParam(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("id %q: %w", raw, core.ErrInvalidID)
	}
	return id, nil
}
