// Package yaml provides a YAML document parser for the config package.
//
// Data is decoded with github.com/goccy/go-yaml and converted into a value.Node tree, so
// YAML configuration loads through the same bindings as JSON. Only a single document is
// accepted. Mapping keys must be strings.
//
// Usage:
//
//	parser := yaml.NewParser()
//	root, err := parser.Parse(data)
//
// Floats are carried through their shortest decimal form, so 0.1 in YAML loads as the exact
// decimal 0.1.
package yaml
