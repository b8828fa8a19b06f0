// Package config carries the embedding-pipeline parameters shared by
// the feature builder, readers and reporting.
//
// Params is a plain validated struct: defaults come from Default,
// overrides from a YAML file via Load, and Validate gates the values
// before any component consumes them. Pairs exposes the settings as
// ordered name/value rows for the texttab parameter dump.
package config
