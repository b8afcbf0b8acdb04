package stub

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Endpoint is one routable record compiled from the specification: a
// (path, method, status) triple with its materialized body and the
// pre-compiled path matcher. Records are immutable once built.
type Endpoint struct {
	Path       string
	Method     string
	StatusCode string
	Body       interface{}
	PathParams []string

	// compiled at build time; nil means the template could not be
	// compiled and this record never matches
	matcher *regexp.Regexp
}

// Matches reports whether a concrete request path satisfies this
// endpoint's path template.
func (e *Endpoint) Matches(path string) bool {
	return e.matcher != nil && e.matcher.MatchString(path)
}

// Table is the ordered set of compiled endpoints for the process. It is
// built once at startup and shared read-only across all request
// handlers, so no locking is needed after construction.
type Table []Endpoint

// Result is a resolved stub response.
type Result struct {
	StatusCode int
	Body       interface{}
}

// Summary is the introspection projection of an endpoint (no body).
type Summary struct {
	Path       string `json:"path"`
	Method     string `json:"method"`
	StatusCode string `json:"status_code"`
}

// Dispatch resolves an inbound method and path against the table,
// scanning in table order and returning the first match. The second
// return value is false when no endpoint matches. Responses declared
// earlier in the table shadow later ones for the same path and method;
// the server has no runtime signal to pick between declared statuses,
// so the first match always wins.
func (t Table) Dispatch(method, path string) (Result, bool) {
	method = strings.ToLower(method)

	for i := range t {
		endpoint := &t[i]
		if endpoint.Method != method || !endpoint.Matches(path) {
			continue
		}

		status, err := strconv.Atoi(endpoint.StatusCode)
		if err != nil {
			status = 200
		}

		log.Info().
			Str("method", method).
			Str("path", path).
			Str("template", endpoint.Path).
			Int("status", status).
			Msg("Dispatched stub response")

		return Result{StatusCode: status, Body: endpoint.Body}, true
	}

	log.Info().
		Str("method", method).
		Str("path", path).
		Msg("No endpoint matches request")

	return Result{}, false
}

// Summaries returns the endpoint listing for the introspection surface.
func (t Table) Summaries() []Summary {
	summaries := make([]Summary, 0, len(t))
	for _, endpoint := range t {
		summaries = append(summaries, Summary{
			Path:       endpoint.Path,
			Method:     endpoint.Method,
			StatusCode: endpoint.StatusCode,
		})
	}
	return summaries
}
