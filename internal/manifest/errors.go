package manifest

import (
	"fmt"

	"github.com/quantmind-br/demobuild/internal/domain"
)

// Manifest validation failures, all reported as ManifestError
var (
	// ErrNoDemos indicates the manifest has no demos defined
	ErrNoDemos = domain.NewManifestError("manifest must contain a non-empty demos array")

	// ErrNoFilterMatch indicates the demo filter matched nothing
	ErrNoFilterMatch = domain.NewManifestError("no demos match the demo filter")
)

func errDuplicateName(name string) error {
	return domain.NewManifestError(fmt.Sprintf("duplicate demo name %q", name))
}

func errMissingName(index int) error {
	return domain.NewManifestError(fmt.Sprintf("demo %d has no name", index))
}

func errMissingTemplate(name string) error {
	return domain.NewManifestError(fmt.Sprintf("demo %q has no template", name))
}

func errInvalidDemo(index int, reason string) error {
	return domain.NewManifestError(fmt.Sprintf("demo %d is invalid: %s", index, reason))
}
