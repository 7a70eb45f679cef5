// Package config defines the format-agnostic model of job declarations,
// along with the Loader interface that every input format implements.
//
// The `config.Model` is the single source the `app` package hands to the
// sequencer. Concrete loaders for the text grammar, HCL and YAML live in
// their own adapter packages.
package config
