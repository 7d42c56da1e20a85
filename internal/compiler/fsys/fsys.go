// Package fsys is the filesystem boundary of the path compiler. Locations
// are afs URLs, so the scan root and the output may be plain local paths,
// file:// URLs or any other scheme registered with afs.
package fsys

import (
	"bytes"
	"context"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Entry is one item of a directory listing
type Entry struct {
	Name  string
	IsDir bool
}

// FS reads the scanned tree and writes the generated file
type FS interface {
	List(ctx context.Context, dir string) ([]Entry, error)
	Exists(ctx context.Context, location string) (bool, error)
	IsDir(ctx context.Context, location string) (bool, error)
	ReadFile(ctx context.Context, location string) ([]byte, error)
	WriteFile(ctx context.Context, location string, data []byte) error
	Move(ctx context.Context, source, dest string) error
	Delete(ctx context.Context, location string) error
	Join(base string, elements ...string) string
	Split(location string) (parent, name string)
}

// Service implements FS on top of an afs.Service
type Service struct {
	fs afs.Service
}

// New returns an FS backed by the default afs service
func New() *Service {
	return &Service{fs: afs.New()}
}

// NewWithService wraps an existing afs service
func NewWithService(fs afs.Service) *Service {
	return &Service{fs: fs}
}

// List returns the direct children of dir sorted by name. The directory
// itself, which afs reports first, is skipped.
func (s *Service) List(ctx context.Context, dir string) ([]Entry, error) {
	objects, err := s.fs.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	self := strings.TrimRight(url.Path(dir), "/")
	entries := make([]Entry, 0, len(objects))
	for _, object := range objects {
		if url.Equals(object.URL(), dir) || strings.TrimRight(url.Path(object.URL()), "/") == self {
			continue
		}
		entries = append(entries, Entry{Name: object.Name(), IsDir: object.IsDir()})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Exists reports whether location exists
func (s *Service) Exists(ctx context.Context, location string) (bool, error) {
	return s.fs.Exists(ctx, location)
}

// IsDir reports whether location is an existing directory
func (s *Service) IsDir(ctx context.Context, location string) (bool, error) {
	object, err := s.fs.Object(ctx, location)
	if err != nil {
		return false, err
	}
	return object.IsDir(), nil
}

// ReadFile returns the content of location
func (s *Service) ReadFile(ctx context.Context, location string) ([]byte, error) {
	return s.fs.DownloadWithURL(ctx, location)
}

// WriteFile replaces the content of location, creating parent directories
func (s *Service) WriteFile(ctx context.Context, location string, data []byte) error {
	return s.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data))
}

// Move renames source to dest, replacing dest
func (s *Service) Move(ctx context.Context, source, dest string) error {
	return s.fs.Move(ctx, source, dest)
}

// Delete removes location
func (s *Service) Delete(ctx context.Context, location string) error {
	return s.fs.Delete(ctx, location)
}

// Join appends path elements to a location
func (s *Service) Join(base string, elements ...string) string {
	return url.Join(base, elements...)
}

// Split returns the parent location and the base name of location
func (s *Service) Split(location string) (string, string) {
	return url.Split(location, file.Scheme)
}
