// Package renderer composes demo pages from a demo template, its data and
// partials, and a shared page shell.
package renderer

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/plan"
	"github.com/quantmind-br/demobuild/internal/utils"
)

//go:embed templates/page.mustache
var pageShell string

// Page is everything needed to render one demo
type Page struct {
	Demo       domain.DemoConfig
	ModuleName string
	Brand      string
	// Template is the raw demo template text
	Template string
	Data     map[string]any
	Partials domain.PartialMap
	// PolyfillURL is shared by every demo of a build
	PolyfillURL string
}

// Renderer renders demo pages
type Renderer struct {
	shell           *mustache.Template
	buildServiceURL string
	logger          *utils.Logger
}

// Options contains options for creating a Renderer
type Options struct {
	// BuildServiceURL is the base of dependency bundle URLs
	BuildServiceURL string
	Logger          *utils.Logger
}

// New creates a renderer using the embedded page shell
func New(opts Options) (*Renderer, error) {
	if opts.Logger == nil {
		opts.Logger = utils.NewNopLogger()
	}

	shell, err := mustache.ParseString(pageShell)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page shell: %w", err)
	}

	return &Renderer{
		shell:           shell,
		buildServiceURL: strings.TrimSuffix(opts.BuildServiceURL, "/"),
		logger:          opts.Logger.WithComponent("renderer"),
	}, nil
}

// Context returns the computed fields of a page
func (r *Renderer) Context(page Page) domain.RenderContext {
	demo := page.Demo
	ctx := domain.RenderContext{
		"title":           fmt.Sprintf("%s: %s demo", page.ModuleName, demo.Name),
		"moduleName":      page.ModuleName,
		"demoName":        demo.Name,
		"description":     demo.Description,
		"documentClasses": demo.DocumentClasses,
		"brand":           page.Brand,
		"hidden":          demo.Hidden,
		"polyfillUrl":     page.PolyfillURL,
	}

	if demo.Sass != "" {
		ctx["stylesheet"] = plan.StylesheetName(demo.Sass)
	}
	if demo.JS != "" {
		ctx["script"] = plan.ScriptName(demo.JS)
	}
	if len(demo.Dependencies) > 0 {
		ctx["dependenciesStylesheet"] = r.BundleURL("css", demo.Dependencies, page.Brand)
		ctx["dependenciesScript"] = r.BundleURL("js", demo.Dependencies, "")
	}

	return ctx
}

// BundleURL returns the build service URL bundling modules of kind css or js
func (r *Renderer) BundleURL(kind string, modules []string, brand string) string {
	escaped := make([]string, len(modules))
	for i, m := range modules {
		escaped[i] = url.QueryEscape(m)
	}

	u := fmt.Sprintf("%s/bundles/%s?modules=%s", r.buildServiceURL, kind, strings.Join(escaped, ","))
	if brand != "" {
		u += "&brand=" + url.QueryEscape(brand)
	}
	return u
}

// Render returns the full HTML page of a demo.
//
// The demo template sees its data overlaid on the computed fields, so data
// keys win; it may include any partial by key. The page shell sees only the
// computed fields and the rendered demo as raw body.
func (r *Renderer) Render(page Page) (string, error) {
	computed := r.Context(page)

	tmpl, err := mustache.ParseStringPartials(page.Template, &mustache.StaticProvider{Partials: page.Partials})
	if err != nil {
		return "", fmt.Errorf("failed to parse template of demo %s: %w", page.Demo.Name, err)
	}

	body, err := tmpl.Render(page.Data, computed)
	if err != nil {
		return "", fmt.Errorf("failed to render demo %s: %w", page.Demo.Name, err)
	}

	shellCtx := make(map[string]any, len(computed)+1)
	for k, v := range computed {
		shellCtx[k] = v
	}
	shellCtx["body"] = body

	html, err := r.shell.Render(shellCtx)
	if err != nil {
		return "", fmt.Errorf("failed to render page of demo %s: %w", page.Demo.Name, err)
	}

	r.logger.WithDemo(page.Demo.Name).Debug().
		Int("partials", len(page.Partials)).
		Int("bytes", len(html)).
		Msg("Rendered demo")

	return html, nil
}
