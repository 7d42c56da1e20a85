// Package pathgen generates a typed paths module from a Next.js App Router
// directory tree.
//
// The pipeline is scan, merge, compile, print and write. Every failure is
// fatal and nothing is written unless the whole module was produced.
package pathgen

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conduit-lang/pathgen/internal/compiler/codegen"
	"github.com/conduit-lang/pathgen/internal/compiler/errors"
	"github.com/conduit-lang/pathgen/internal/compiler/fsys"
	"github.com/conduit-lang/pathgen/internal/compiler/merger"
	"github.com/conduit-lang/pathgen/internal/compiler/route"
	"github.com/conduit-lang/pathgen/internal/compiler/scanner"
	utilstrings "github.com/conduit-lang/pathgen/internal/util/strings"
)

const (
	// DefaultFileName is used when Options.FileName is empty
	DefaultFileName = "paths.ts"
	// SourceExtension is the required suffix of the output file name
	SourceExtension = ".ts"
)

// Options configures a generation run
type Options struct {
	// AppDir is the App Router root to scan
	AppDir string
	// EnvKey names the environment variable with the base URL
	EnvKey string
	// CaseStyle is the style of generated keys; empty means camelCase
	CaseStyle string
	// OutputDir defaults to AppDir
	OutputDir string
	// FileName defaults to paths.ts and must end with .ts
	FileName string

	Logger *zap.Logger
	// FS defaults to the local afs-backed filesystem
	FS fsys.FS
}

// Result describes a generated module
type Result struct {
	Output   string           `json:"output"`
	Source   string           `json:"-"`
	Routes   []codegen.Route  `json:"routes"`
	Warnings errors.ErrorList `json:"warnings,omitempty"`
	Written  bool             `json:"written"`

	Tree *route.Segment `json:"-"`
}

type run struct {
	opts   Options
	style  utilstrings.Style
	fs     fsys.FS
	logger *zap.Logger
}

// Validate checks the options without touching the filesystem
func Validate(opts Options) error {
	_, err := prepare(opts)
	return err
}

func prepare(opts Options) (*run, error) {
	if opts.FileName == "" {
		opts.FileName = DefaultFileName
	}
	if !strings.HasSuffix(opts.FileName, SourceExtension) || opts.FileName == SourceExtension {
		return nil, errors.NewInvalidFileName(opts.FileName)
	}
	if strings.ContainsAny(opts.FileName, `/\`) {
		return nil, errors.NewInvalidConfig("file name", "must not contain a path separator")
	}

	if strings.TrimSpace(opts.EnvKey) == "" {
		return nil, errors.NewEmptyEnvKey()
	}

	style := utilstrings.CamelCase
	if opts.CaseStyle != "" {
		parsed, err := utilstrings.ParseStyle(opts.CaseStyle)
		if err != nil {
			return nil, errors.NewInvalidCaseStyle(opts.CaseStyle, utilstrings.Styles())
		}
		style = parsed
	}

	if opts.AppDir == "" {
		return nil, errors.NewInvalidConfig("app directory", "cannot be empty")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = opts.AppDir
	}

	r := &run{opts: opts, style: style, fs: opts.FS, logger: opts.Logger}
	if r.fs == nil {
		r.fs = fsys.New()
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r, nil
}

// Tree scans and merges the app directory
func Tree(ctx context.Context, opts Options) (*route.Segment, error) {
	r, err := prepare(opts)
	if err != nil {
		return nil, err
	}
	return r.tree(ctx)
}

// Build produces the module in memory without writing it
func Build(ctx context.Context, opts Options) (*Result, error) {
	r, err := prepare(opts)
	if err != nil {
		return nil, err
	}
	return r.build(ctx)
}

// Generate builds the module and writes it to OutputDir/FileName. The
// previous file is replaced only once the new content is fully written.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	r, err := prepare(opts)
	if err != nil {
		return nil, err
	}

	result, err := r.build(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.write(ctx, result.Output, []byte(result.Source)); err != nil {
		return nil, err
	}
	result.Written = true

	r.logger.Info("generated paths",
		zap.String("output", result.Output),
		zap.Int("routes", len(result.Routes)),
	)
	return result, nil
}

func (r *run) tree(ctx context.Context) (*route.Segment, error) {
	if err := r.checkRoot(ctx); err != nil {
		return nil, err
	}

	raw, err := scanner.NewScanner(r.fs, r.style, r.logger).ScanRoot(ctx, r.opts.AppDir)
	if err != nil {
		return nil, err
	}
	return merger.MergeTree(raw), nil
}

func (r *run) build(ctx context.Context) (*Result, error) {
	tree, err := r.tree(ctx)
	if err != nil {
		return nil, err
	}

	out := codegen.Compile(tree, r.opts.EnvKey)
	for _, w := range out.Warnings {
		r.logger.Warn(w.Message, zap.String("code", string(w.Code)), zap.String("route", w.Path))
	}

	return &Result{
		Output:   r.fs.Join(r.opts.OutputDir, r.opts.FileName),
		Source:   out.Source(),
		Routes:   codegen.Routes(out.Plan),
		Warnings: out.Warnings,
		Tree:     tree,
	}, nil
}

func (r *run) checkRoot(ctx context.Context) error {
	dir := r.opts.AppDir
	exists, err := r.fs.Exists(ctx, dir)
	if err != nil {
		return errors.NewRead(dir, "stat app directory", err)
	}
	if !exists {
		return errors.NewMissingDirectory(dir)
	}

	isDir, err := r.fs.IsDir(ctx, dir)
	if err != nil {
		return errors.NewRead(dir, "stat app directory", err)
	}
	if !isDir {
		return errors.NewNotDirectory(dir)
	}
	return nil
}

// write uploads data next to output and moves it into place. The temporary
// file keeps the extension of output so the move renames the file instead of
// nesting it under a directory of that name.
func (r *run) write(ctx context.Context, output string, data []byte) error {
	if isDir, err := r.fs.IsDir(ctx, output); err == nil && isDir {
		return errors.NewWrite(output, fmt.Errorf("output path is a directory"))
	}

	parent, name := r.fs.Split(output)
	temp := r.fs.Join(parent, TempName(name, uuid.New().String()))

	if err := r.fs.WriteFile(ctx, temp, data); err != nil {
		r.discard(ctx, temp)
		return errors.NewWrite(output, err)
	}
	if err := r.fs.Move(ctx, temp, output); err != nil {
		r.discard(ctx, temp)
		return errors.NewWrite(output, err)
	}
	return nil
}

// TempName is the hidden sibling a module named name is staged in,
// e.g. .paths.<id>.ts for paths.ts
func TempName(name, id string) string {
	ext := path.Ext(name)
	return "." + strings.TrimSuffix(name, ext) + "." + id + ext
}

func (r *run) discard(ctx context.Context, temp string) {
	if exists, _ := r.fs.Exists(ctx, temp); !exists {
		return
	}
	if err := r.fs.Delete(ctx, temp); err != nil {
		r.logger.Warn("failed to remove temporary file", zap.String("file", temp), zap.Error(err))
	}
}
