package domain

//go:generate mockgen -source=interfaces.go -destination=../mocks/domain.go -package=mocks

import (
	"context"
)

// SassConfig is passed to the Sass compilation collaborator
type SassConfig struct {
	Sass             string
	SassIncludePaths []string
	Sourcemaps       bool
	BuildCSS         string
	BuildFolder      string
	Cwd              string
	Brand            string
	Production       bool
}

// JSConfig is passed to the JS bundling collaborator
type JSConfig struct {
	JS          string
	BuildFolder string
	BuildJS     string
	Cwd         string
	Production  bool
}

// SassBuilder compiles a Sass entry point and returns the CSS
type SassBuilder interface {
	BuildSass(ctx context.Context, cfg SassConfig) (string, error)
}

// JSBuilder bundles a JS entry point and returns the bundle
type JSBuilder interface {
	BuildJS(ctx context.Context, cfg JSConfig) (string, error)
}

// ModuleNameResolver resolves the component name of a project
type ModuleNameResolver interface {
	ModuleName(ctx context.Context, cwd string) (string, error)
}

// Fetcher performs a single HTTP GET
type Fetcher interface {
	// Get returns the body of a 2xx response
	Get(ctx context.Context, url string) (*Response, error)
	// Close releases resources
	Close() error
}

// Response represents an HTTP response
type Response struct {
	StatusCode  int
	Body        []byte
	ContentType string
	URL         string
}

// Writer persists build artifacts
type Writer interface {
	Write(ctx context.Context, path string, content []byte) error
}
