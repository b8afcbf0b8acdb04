package stub

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rs/zerolog/log"
)

// supportedMethods is the fixed set of HTTP methods compiled into
// endpoints, in priority order. Other methods on a path item are
// silently ignored.
var supportedMethods = []string{"get", "post", "put", "delete"}

func operationFor(pathItem *openapi3.PathItem, method string) *openapi3.Operation {
	switch method {
	case "get":
		return pathItem.Get
	case "post":
		return pathItem.Post
	case "put":
		return pathItem.Put
	case "delete":
		return pathItem.Delete
	}
	return nil
}

// BuildEndpoints walks the parsed specification and produces the
// endpoint table. Reference ($ref) path items and responses are skipped
// with a warning; a malformed entry never aborts the walk. Paths and
// status codes are visited in sorted key order so the table, and with
// it the first-match dispatch behavior, is deterministic.
func BuildEndpoints(doc *openapi3.T) Table {
	table := make(Table, 0)
	if doc.Paths == nil {
		return table
	}

	paths := doc.Paths.Map()
	log.Info().Int("paths", len(paths)).Msg("Processing OpenAPI spec")

	pathKeys := make([]string, 0, len(paths))
	for path := range paths {
		pathKeys = append(pathKeys, path)
	}
	sort.Strings(pathKeys)

	for _, path := range pathKeys {
		pathItem := paths[path]
		if pathItem == nil {
			continue
		}
		if pathItem.Ref != "" {
			log.Warn().Str("path", path).Msg("References not supported yet, skipping path")
			continue
		}

		for _, method := range supportedMethods {
			operation := operationFor(pathItem, method)
			if operation == nil {
				continue
			}
			table = append(table, compileOperation(path, method, operation)...)
		}
	}

	return table
}

func compileOperation(path, method string, operation *openapi3.Operation) []Endpoint {
	params := ExtractParams(path)

	matcher, err := CompileTemplate(path, params)
	if err != nil {
		// Should not happen with escaped literals; the records still
		// exist but never match.
		log.Warn().Err(err).Str("path", path).Msg("Failed to compile path template")
		matcher = nil
	}

	var endpoints []Endpoint
	if operation.Responses == nil {
		return endpoints
	}

	responses := operation.Responses.Map()
	statusCodes := make([]string, 0, len(responses))
	for statusCode := range responses {
		statusCodes = append(statusCodes, statusCode)
	}
	sort.Strings(statusCodes)

	for _, statusCode := range statusCodes {
		responseRef := responses[statusCode]
		if responseRef == nil || responseRef.Ref != "" || responseRef.Value == nil {
			log.Warn().
				Str("path", path).
				Str("method", method).
				Str("status", statusCode).
				Msg("References not supported yet, skipping response")
			continue
		}

		endpoints = append(endpoints, Endpoint{
			Path:       path,
			Method:     method,
			StatusCode: statusCode,
			Body:       SelectBody(responseRef.Value),
			PathParams: params,
			matcher:    matcher,
		})

		log.Info().
			Str("method", strings.ToUpper(method)).
			Str("path", path).
			Str("status", statusCode).
			Msg("Added endpoint")
	}

	return endpoints
}
