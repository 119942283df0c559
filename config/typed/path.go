package typed

import (
	"path/filepath"

	"github.com/0xalexb/mirrorconf/config/value"
)

// Path is a filesystem path field. Loading replaces the whole path.
type Path string

// Load implements Value.
func (p *Path) Load(node *value.Node, typeName, key string) error {
	v, ok := node.Str()
	if !ok {
		return mismatch(typeName, key, "not a path string")
	}

	*p = Path(v)

	return nil
}

// Describe implements Value.
func (p *Path) Describe() (string, bool) {
	return string(*p), true
}

func (p Path) String() string {
	return string(p)
}

// Join returns p extended with elem.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}
