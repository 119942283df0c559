// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read and checked to be UTF-8 text when the Fetcher is constructed. Fetch
// returns the cached contents, so the configuration stays consistent for the lifetime of
// the process even if the file changes on disk.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/mirror-server-conf.json")()
//	if err != nil {
//	    // file not found, permission denied, directory, not UTF-8
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is with ErrPathIsDirectory or ErrNotUTF8 to tell the failures apart.
package file
