// Package loader populates configuration structs from a document tree.
//
// Fields take part in loading when they carry a config tag holding their binding:
//
//	type LogConfig struct {
//		LogPath    typed.Path  `config:"key = \"log_path\""`
//		LogLevel   typed.Level `config:"key = \"log_level\""`
//		MaxLogDays typed.Int32 `config:"key = \"max_log_days\""`
//	}
//
// Bindings are compiled once per struct type, the first time the type is used, and cached.
// A field type must implement typed.Value through its pointer, or be a struct that is loaded
// recursively against the node at its key. An empty key loads such a struct from the enclosing
// node, flattening its fields into the parent's namespace. Fields whose type implements
// typed.Optional may be missing from the document.
//
// Each field key is resolved independently against the same node, so fields need not be
// siblings. Loading stops at the first failing field.
package loader
