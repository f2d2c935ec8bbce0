// Package assets stores uploaded site images under a public root.
package assets

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

var (
	ErrMissingName = errors.New("assets: missing target filename")
	ErrOutsideRoot = errors.New("assets: target escapes the public root")
	ErrNotFound    = errors.New("assets: not found")
)

// Store writes and reads asset files by slash-separated key
type Store interface {
	// Put writes r under key, replacing any existing object
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Get opens the object stored under key
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Name identifies the backend in logs
	Name() string
}

// Target is the caller-chosen destination of an upload
type Target struct {
	Path     string // directory under the public root, e.g. "/" or "/social/"
	Filename string
}

// Key returns the slash-separated key of the target relative to the public root
func (t Target) Key() (string, error) {
	name := strings.ReplaceAll(strings.TrimSpace(t.Filename), "\\", "/")
	if name == "" {
		return "", ErrMissingName
	}
	if strings.HasSuffix(name, "/") {
		return "", ErrMissingName
	}

	dir := strings.ReplaceAll(t.Path, "\\", "/")
	key := path.Join(strings.TrimLeft(dir, "/"), name)
	key = strings.TrimPrefix(key, "/")

	if key == "" || key == "." || key == ".." || strings.HasPrefix(key, "../") {
		return "", ErrOutsideRoot
	}
	return key, nil
}

// PublicPath returns the URL path the uploaded file is served from
func (t Target) PublicPath() (string, error) {
	key, err := t.Key()
	if err != nil {
		return "", err
	}
	return "/" + key, nil
}
