// Package polyfill collects the browser features a component and its
// installed dependencies require, and builds the polyfill service URL for them.
package polyfill

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/demobuild/internal/domain"
	"github.com/quantmind-br/demobuild/internal/project"
	"github.com/quantmind-br/demobuild/internal/utils"
)

// Aggregator unions browserFeatures.required across project manifests
type Aggregator struct {
	baseURL string
	logger  *utils.Logger
}

// NewAggregator creates an aggregator for the polyfill service at baseURL
func NewAggregator(baseURL string, logger *utils.Logger) *Aggregator {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Aggregator{
		baseURL: baseURL,
		logger:  logger.WithComponent("polyfill"),
	}
}

// Manifests returns the root manifest followed by every immediate dependency
// manifest, in discovery order.
func Manifests(cwd string) ([]string, error) {
	var files []string
	for _, pattern := range []string{project.ManifestFile, project.DependencyManifestGlob} {
		matches, err := filepath.Glob(filepath.Join(cwd, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid manifest pattern %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

// Features returns the required features of cwd and its dependencies.
// A manifest that is not valid JSON fails the whole aggregation.
func (a *Aggregator) Features(cwd string) (*FeatureSet, error) {
	files, err := Manifests(cwd)
	if err != nil {
		return nil, err
	}

	set := NewFeatureSet()
	for _, file := range files {
		required, err := readRequired(file)
		if err != nil {
			return nil, err
		}
		set.Add(required...)
	}

	a.logger.Debug().
		Int("manifests", len(files)).
		Strs("features", set.Items()).
		Msg("Aggregated browser features")

	return set, nil
}

// URL returns the polyfill service URL covering the features of cwd
func (a *Aggregator) URL(cwd string) (string, error) {
	set, err := a.Features(cwd)
	if err != nil {
		return "", err
	}
	return BuildURL(a.baseURL, set.Items()), nil
}

// BuildURL returns the polyfill service query for features.
// The features parameter is omitted when there are none.
func BuildURL(baseURL string, features []string) string {
	var params []string
	if len(features) > 0 {
		escaped := make([]string, len(features))
		for i, f := range features {
			escaped[i] = url.QueryEscape(f)
		}
		params = append(params, "features="+strings.Join(escaped, ","))
	}
	params = append(params, "flags=gated", "unknown=polyfill")

	return utils.AppendQuery(baseURL, strings.Join(params, "&"))
}

func readRequired(file string) ([]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	var manifest struct {
		BrowserFeatures struct {
			Required []any `json:"required"`
		} `json:"browserFeatures"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, domain.NewParseError(file, err)
	}

	var required []string
	for _, f := range manifest.BrowserFeatures.Required {
		if s, ok := f.(string); ok {
			required = append(required, s)
		}
	}
	return required, nil
}
