// Package manifest loads and validates the demo section of a component's
// origami.json manifest.
//
// # Manifest Format
//
//	{
//	  "demosDefaults": {
//	    "sass": "demos/src/demo.scss",
//	    "js": "demos/src/demo.js",
//	    "documentClasses": "demo-page"
//	  },
//	  "demos": [
//	    {"name": "basic", "template": "demos/src/basic.mustache"},
//	    {"name": "themed", "template": "demos/src/themed.mustache", "data": "demos/src/themed.json"}
//	  ]
//	}
//
// Every demo is built from three layers merged in order: built-in defaults,
// demosDefaults, then the demo entry itself. See Merge for the rules.
//
// # Usage
//
//	loader := manifest.NewLoader()
//	m, err := loader.Load(manifest.LoadOptions{Cwd: ".", Filter: []string{"basic"}})
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// All failures are *domain.Error values: ConfigError for a custom manifest
// path, ParseError for malformed JSON and ManifestError for an empty demo
// list, a missing or duplicate name, or a filter that matches nothing.
package manifest
