// Package json provides a JSON document parser for the config package.
//
// Documents are validated and walked with github.com/tidwall/gjson. Numbers keep their
// source text, so integers beyond 64 bits and exact decimals survive until a field narrows
// them.
//
// Usage:
//
//	parser := json.NewParser()
//	root, err := parser.Parse(data)
package json
