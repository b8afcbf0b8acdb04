package stub

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openapi-stub-server/internal/spec"
)

const petstoreSpec = `
openapi: 3.0.0
info:
  title: Petstore
  version: "1.0"
paths:
  /pets/{petId}:
    get:
      responses:
        "200":
          description: A pet
          content:
            application/json:
              example:
                name: Rex
        "404":
          description: Not found
    delete:
      responses:
        "204":
          description: Deleted
  /pets:
    get:
      responses:
        "200":
          description: A list of pets
    patch:
      responses:
        "200":
          description: Unsupported method
  /files/report.pdf:
    get:
      responses:
        "200":
          description: The report
`

func loadTestDoc(t *testing.T, text string) *openapi3.T {
	t.Helper()
	doc, err := spec.LoadFromData([]byte(text))
	require.NoError(t, err)
	return doc
}

func TestBuildEndpoints(t *testing.T) {
	table := BuildEndpoints(loadTestDoc(t, petstoreSpec))

	// Paths in sorted order, methods get->post->put->delete, statuses
	// in sorted order. The patch operation contributes nothing.
	want := []struct {
		path   string
		method string
		status string
	}{
		{"/files/report.pdf", "get", "200"},
		{"/pets", "get", "200"},
		{"/pets/{petId}", "get", "200"},
		{"/pets/{petId}", "get", "404"},
		{"/pets/{petId}", "delete", "204"},
	}

	require.Len(t, table, len(want))
	for i, w := range want {
		assert.Equal(t, w.path, table[i].Path, "record %d path", i)
		assert.Equal(t, w.method, table[i].Method, "record %d method", i)
		assert.Equal(t, w.status, table[i].StatusCode, "record %d status", i)
	}
}

func TestBuildEndpointsBodies(t *testing.T) {
	table := BuildEndpoints(loadTestDoc(t, petstoreSpec))

	var got200, got404 interface{}
	for _, endpoint := range table {
		if endpoint.Path != "/pets/{petId}" || endpoint.Method != "get" {
			continue
		}
		switch endpoint.StatusCode {
		case "200":
			got200 = endpoint.Body
		case "404":
			got404 = endpoint.Body
		}
	}

	assert.Equal(t, map[string]interface{}{"name": "Rex"}, got200)
	assert.Equal(t, DefaultStubBody(), got404)
}

func TestBuildEndpointsParams(t *testing.T) {
	table := BuildEndpoints(loadTestDoc(t, petstoreSpec))

	for _, endpoint := range table {
		switch endpoint.Path {
		case "/pets/{petId}":
			assert.Equal(t, []string{"petId"}, endpoint.PathParams)
		default:
			assert.Empty(t, endpoint.PathParams)
		}
	}
}

func TestBuildEndpointsUnsupportedMethodSkipped(t *testing.T) {
	table := BuildEndpoints(loadTestDoc(t, petstoreSpec))

	for _, endpoint := range table {
		assert.Contains(t, supportedMethods, endpoint.Method)
	}

	_, ok := table.Dispatch("patch", "/pets")
	assert.False(t, ok)
}

func TestBuildEndpointsSkipsReferencedResponses(t *testing.T) {
	const text = `
openapi: 3.0.0
info:
  title: Refs
  version: "1.0"
components:
  responses:
    ServerError:
      description: Boom
paths:
  /things:
    get:
      responses:
        "200":
          description: OK
        "500":
          $ref: "#/components/responses/ServerError"
`
	table := BuildEndpoints(loadTestDoc(t, text))

	require.Len(t, table, 1)
	assert.Equal(t, "200", table[0].StatusCode)
}

func TestBuildEndpointsSkipsReferencedPathItems(t *testing.T) {
	doc := &openapi3.T{
		OpenAPI: "3.0.0",
		Info:    &openapi3.Info{Title: "Refs", Version: "1.0"},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/indirect", &openapi3.PathItem{Ref: "#/components/pathItems/x"}),
		),
	}

	table := BuildEndpoints(doc)
	assert.Empty(t, table)
}

func TestBuildEndpointsEmptyDoc(t *testing.T) {
	table := BuildEndpoints(&openapi3.T{OpenAPI: "3.0.0"})
	assert.Empty(t, table)
}
