// Package value provides the generic document tree that configuration documents are parsed into.
//
// A document is a tree of *Node values of one of six kinds: Null, Bool, Number, String, Array
// and Object. Trees are built once by a document parser (see config/parser/json and
// config/parser/yaml) and are not modified afterwards.
//
// Resolve walks a slash-delimited key through a tree:
//
//	node, err := value.Resolve(root, "server_protocols/http/port")
//
// An empty key resolves to the root itself. Failures are reported as *PathError carrying the
// exact prefix that was consumed when the walk diverged.
package value
