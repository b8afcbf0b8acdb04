// Package version holds build metadata for the application.
package version

const (
	// AppName is the name of the application
	AppName = "openapi-stub-server"

	// Version is the current version of the application
	Version = "0.1.0"

	// Description is a short description of the application
	Description = "Serves stub responses from an OpenAPI specification"
)
