package domain

// CommonOptions contains shared options for a build invocation.
type CommonOptions struct {
	Verbose    bool
	DryRun     bool
	Production bool
}
