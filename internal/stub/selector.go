package stub

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// DefaultStubBody returns the fallback payload served when a response
// declares no usable JSON example.
func DefaultStubBody() map[string]interface{} {
	return map[string]interface{}{
		"message": "This is a stub response",
		"status":  "success",
	}
}

// SelectBody picks the payload to serve for a declared response. If the
// response carries a JSON content type with an attached example, that
// example is returned unmodified; otherwise the default stub body is
// used. Content types are visited in sorted order so the choice is
// deterministic. No schema-based synthesis is attempted.
func SelectBody(response *openapi3.Response) interface{} {
	contentTypes := make([]string, 0, len(response.Content))
	for contentType := range response.Content {
		contentTypes = append(contentTypes, contentType)
	}
	sort.Strings(contentTypes)

	for _, contentType := range contentTypes {
		if !strings.HasPrefix(contentType, "application/json") {
			continue
		}
		if mediaType := response.Content[contentType]; mediaType.Example != nil {
			return mediaType.Example
		}
	}

	return DefaultStubBody()
}
