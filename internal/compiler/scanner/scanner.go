// Package scanner walks an App Router directory tree and produces the raw,
// unmerged route segments. Route groups and parallel slots are spliced into
// their parent level; the listing of every directory is visited in
// lexicographic order so the result does not depend on the platform.
package scanner

import (
	"context"

	"go.uber.org/zap"

	"github.com/conduit-lang/pathgen/internal/compiler/errors"
	"github.com/conduit-lang/pathgen/internal/compiler/fsys"
	"github.com/conduit-lang/pathgen/internal/compiler/route"
	utilstrings "github.com/conduit-lang/pathgen/internal/util/strings"
)

// Extensions are tried in this order for page and route files
var Extensions = []string{"tsx", "ts", "jsx", "js"}

const (
	pageBase  = "page"
	routeBase = "route"
)

// FileSystem is the read side of the filesystem the scanner needs
type FileSystem interface {
	List(ctx context.Context, dir string) ([]fsys.Entry, error)
	Exists(ctx context.Context, location string) (bool, error)
	ReadFile(ctx context.Context, location string) ([]byte, error)
	Join(base string, elements ...string) string
}

// Scanner scans a directory for route segments
type Scanner struct {
	fs     FileSystem
	style  utilstrings.Style
	logger *zap.Logger
}

// NewScanner creates a new route scanner. A nil logger disables logging.
func NewScanner(fs FileSystem, style utilstrings.Style, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{fs: fs, style: style, logger: logger}
}

// ScanRoot scans dir and returns the synthetic root segment. The root
// always exposes the site-root accessor; verbs exported by a root handler
// file are attached to it.
func (s *Scanner) ScanRoot(ctx context.Context, dir string) (*route.Segment, error) {
	methods, err := s.extractMethods(ctx, dir)
	if err != nil {
		return nil, err
	}

	children, err := s.Scan(ctx, dir)
	if err != nil {
		return nil, err
	}

	return &route.Segment{
		HasPage:  true,
		Methods:  methods,
		Children: children,
	}, nil
}

// Scan returns the raw segments found under dir. Any listing or read
// failure aborts the scan.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]*route.Segment, error) {
	return s.scanDir(ctx, dir, 0)
}

func (s *Scanner) scanDir(ctx context.Context, dir string, depth int) ([]*route.Segment, error) {
	entries, err := s.fs.List(ctx, dir)
	if err != nil {
		return nil, errors.NewRead(dir, "list directory", err)
	}

	s.logger.Debug("scanning directory", zap.String("dir", dir), zap.Int("entries", len(entries)))

	var out []*route.Segment
	for _, entry := range entries {
		if !entry.IsDir || route.Excluded(entry.Name, depth) {
			continue
		}

		full := s.fs.Join(dir, entry.Name)
		c := route.Classify(entry.Name)

		if c.Invisible() {
			spliced, err := s.scanDir(ctx, full, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, spliced...)
			continue
		}

		seg, err := s.scanSegment(ctx, full, c, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, seg)
	}

	return out, nil
}

func (s *Scanner) scanSegment(ctx context.Context, dir string, c route.Classification, depth int) (*route.Segment, error) {
	seg := &route.Segment{}

	if c.IsDynamic() {
		seg.Key = utilstrings.Convert(c.Param, s.style)
		seg.Dynamic = &route.Dynamic{
			Param:    c.Param,
			Optional: c.Optional(),
			CatchAll: c.Kind == route.KindCatchAll || c.Kind == route.KindOptionalCatchAll,
		}
	} else {
		seg.Key = utilstrings.Convert(c.Name, s.style)
		seg.PathLiteral = c.Name
	}

	hasPage, err := s.hasFile(ctx, dir, pageBase)
	if err != nil {
		return nil, err
	}
	seg.HasPage = hasPage

	if seg.Methods, err = s.extractMethods(ctx, dir); err != nil {
		return nil, err
	}

	if seg.Children, err = s.scanDir(ctx, dir, depth+1); err != nil {
		return nil, err
	}

	return seg, nil
}

// hasFile reports whether any base.{tsx,ts,jsx,js} exists in dir
func (s *Scanner) hasFile(ctx context.Context, dir, base string) (bool, error) {
	_, found, err := s.findFile(ctx, dir, base)
	return found, err
}

func (s *Scanner) findFile(ctx context.Context, dir, base string) (string, bool, error) {
	for _, ext := range Extensions {
		candidate := s.fs.Join(dir, base+"."+ext)
		ok, err := s.fs.Exists(ctx, candidate)
		if err != nil {
			return "", false, errors.NewRead(candidate, "stat file", err)
		}
		if ok {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

// extractMethods reads the first route handler file in dir, if any
func (s *Scanner) extractMethods(ctx context.Context, dir string) (route.MethodSet, error) {
	location, found, err := s.findFile(ctx, dir, routeBase)
	if err != nil || !found {
		return 0, err
	}

	src, err := s.fs.ReadFile(ctx, location)
	if err != nil {
		return 0, errors.NewRead(location, "read route handler", err)
	}

	methods := ExtractMethods(src)
	s.logger.Debug("found route handler", zap.String("file", location), zap.Stringer("methods", methods))
	return methods, nil
}
