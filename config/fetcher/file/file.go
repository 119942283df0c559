package file

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrPathIsDirectory is returned when the configuration path points to a directory.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrNotUTF8 is returned when the configuration file is not valid UTF-8 text.
var ErrNotUTF8 = errors.New("content is not valid UTF-8")

//nolint:gochecknoglobals // byte order mark some editors prepend to UTF-8 files
var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Fetcher implements config.DataFetcher for configuration files. The file is read once,
// when the Fetcher is constructed.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor reading the configuration file at fpath, so a DI
// container controls when the file is read. A leading byte order mark is dropped.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		data = bytes.TrimPrefix(data, byteOrderMark)

		if !utf8.Valid(data) {
			return nil, fmt.Errorf("file %q: %w", cleanPath, ErrNotUTF8)
		}

		return &Fetcher{path: cleanPath, data: data}, nil
	}
}

// Path returns the cleaned path the configuration was read from.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the file contents read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	return bytes.Clone(f.data), nil
}
