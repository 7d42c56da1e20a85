package pathgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/conduit-lang/pathgen/internal/compiler/errors"
	"github.com/conduit-lang/pathgen/internal/compiler/fsys"
)

const blogHandler = `export async function GET() {}
export async function POST(request: Request) {}
export async function PUT(request: Request) {}
`

func fixtureApp(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"login/page.tsx":                              "",
		"blog/route.ts":                               blogHandler,
		"blog/[[...slug]]/page.tsx":                   "",
		"blog/[[...slug]]/route.ts":                   blogHandler,
		"blog/[[...slug]]/[blogComponentId]/page.tsx": "",
		"userSettings/page.tsx":                       "",
		"api/health/route.ts":                         "export function GET() {}",
	}
	for name, content := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return root
}

func options(dir string) Options {
	return Options{AppDir: dir, EnvKey: "NEXT_PUBLIC_APP_BASE_URL"}
}

func TestGenerate_WritesModule(t *testing.T) {
	dir := fixtureApp(t)

	result, err := Generate(context.Background(), options(dir))
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.True(t, strings.HasSuffix(result.Output, "paths.ts"))

	written, err := os.ReadFile(filepath.Join(dir, "paths.ts"))
	require.NoError(t, err)
	assert.Equal(t, result.Source, string(written))

	src := string(written)
	assert.Contains(t, src, `process.env["NEXT_PUBLIC_APP_BASE_URL"]`)
	assert.Contains(t, src, "login: {\n        ...make(\"\" + \"/login\")\n    }")
	assert.Contains(t, src, `GET: make("" + "/blog")`)
	assert.Contains(t, src, "slug: (slug?: string) => ({")
	assert.Contains(t, src, "blogComponentId: (blogComponentId: string) => ({")
	assert.Contains(t, src, "userSettings: {")
	assert.NotContains(t, src, "api")
	assert.NotContains(t, src, "health")

	assertRegularFile(t, filepath.Join(dir, "paths.ts"))
	assertNoStagedFiles(t, dir)
}

// assertRegularFile checks that path is a plain file and not a directory
func assertRegularFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "%s is not a regular file", path)
}

// assertNoStagedFiles checks that no temporary sibling was left in dir
func assertNoStagedFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".paths."), "temporary file %s left behind", e.Name())
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	dir := fixtureApp(t)

	first, err := Generate(context.Background(), options(dir))
	require.NoError(t, err)
	second, err := Generate(context.Background(), options(dir))
	require.NoError(t, err)

	assert.Equal(t, first.Source, second.Source, "the previous output file is not a route")
	assert.NotContains(t, second.Source, "pathsTs")

	written, err := os.ReadFile(filepath.Join(dir, "paths.ts"))
	require.NoError(t, err)
	assert.Equal(t, second.Source, string(written))
	assertRegularFile(t, filepath.Join(dir, "paths.ts"))
	assertNoStagedFiles(t, dir)
}

func TestGenerate_ReplacesPreviousOutput(t *testing.T) {
	dir := fixtureApp(t)
	target := filepath.Join(dir, "paths.ts")
	require.NoError(t, os.WriteFile(target, []byte("// stale"), 0644))

	result, err := Generate(context.Background(), options(dir))
	require.NoError(t, err)

	assertRegularFile(t, target)
	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, result.Source, string(written))
}

func TestGenerate_OutputIsADirectory(t *testing.T) {
	dir := fixtureApp(t)
	target := filepath.Join(dir, "paths.ts")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "keep"), 0755))

	_, err := Generate(context.Background(), options(dir))
	require.Error(t, err)
	ce, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrWrite, ce.Code)
	assert.DirExists(t, filepath.Join(target, "keep"))
}

func TestTempName(t *testing.T) {
	assert.Equal(t, ".paths.abc.ts", TempName("paths.ts", "abc"))
	assert.Equal(t, ".routes.v2.abc.ts", TempName("routes.v2.ts", "abc"))
	assert.Equal(t, filepath.Ext("paths.ts"), filepath.Ext(TempName("paths.ts", "abc")))
}

func TestGenerate_OutputDirAndFileName(t *testing.T) {
	dir := fixtureApp(t)
	out := filepath.Join(t.TempDir(), "generated")

	opts := options(dir)
	opts.OutputDir = out
	opts.FileName = "routes.ts"
	_, err := Generate(context.Background(), opts)
	require.NoError(t, err)

	assertRegularFile(t, filepath.Join(out, "routes.ts"))
	_, err = os.Stat(filepath.Join(dir, "paths.ts"))
	assert.True(t, os.IsNotExist(err))
}

func TestBuild_LowerSnake(t *testing.T) {
	opts := options(fixtureApp(t))
	opts.CaseStyle = "lowerSnake"

	result, err := Build(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Contains(t, result.Source, "user_settings: {\n        ...make(\"\" + \"/userSettings\")")
	assert.Contains(t, result.Source, "blog_component_id: (blogComponentId: string) => ({")

	_, err = os.Stat(filepath.Join(opts.AppDir, "paths.ts"))
	assert.True(t, os.IsNotExist(err), "Build must not write")
}

func TestBuild_Routes(t *testing.T) {
	result, err := Build(context.Background(), options(fixtureApp(t)))
	require.NoError(t, err)

	var expressions []string
	for _, r := range result.Routes {
		expressions = append(expressions, r.Expression)
	}
	assert.Contains(t, expressions, "paths.blog.slug(slug).POST")
	assert.Contains(t, expressions, "paths.userSettings")
}

func TestTree(t *testing.T) {
	tree, err := Tree(context.Background(), options(fixtureApp(t)))
	require.NoError(t, err)

	require.Len(t, tree.Children, 3)
	assert.Equal(t, "blog", tree.Children[0].Key)
	assert.Equal(t, "login", tree.Children[1].Key)
	assert.Equal(t, "userSettings", tree.Children[2].Key)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		code   errors.ErrorCode
	}{
		{"wrong extension", func(o *Options) { o.FileName = "paths.js" }, errors.ErrInvalidFileName},
		{"bare extension", func(o *Options) { o.FileName = ".ts" }, errors.ErrInvalidFileName},
		{"path in file name", func(o *Options) { o.FileName = "lib/paths.ts" }, errors.ErrInvalidConfig},
		{"empty env key", func(o *Options) { o.EnvKey = " " }, errors.ErrEmptyEnvKey},
		{"unknown case style", func(o *Options) { o.CaseStyle = "kebab" }, errors.ErrInvalidCaseStyle},
		{"empty app dir", func(o *Options) { o.AppDir = "" }, errors.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options("src/app")
			tt.modify(&opts)

			err := Validate(opts)
			require.Error(t, err)
			assert.True(t, errors.IsConfiguration(err))
			ce, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, ce.Code)
		})
	}

	assert.NoError(t, Validate(options("src/app")))
}

func TestGenerate_ConfigurationCheckedBeforeScan(t *testing.T) {
	opts := options(filepath.Join(t.TempDir(), "missing"))
	opts.FileName = "paths.tsx"

	_, err := Generate(context.Background(), opts)
	assert.True(t, errors.IsConfiguration(err))
}

func TestGenerate_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := Generate(context.Background(), options(missing))
	require.Error(t, err)
	assert.True(t, errors.IsMissingDirectory(err))

	ce, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrMissingDirectory, ce.Code)
	assert.Equal(t, missing, ce.Path)
}

func TestGenerate_RootIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "page.tsx")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := Generate(context.Background(), options(file))
	require.Error(t, err)
	ce, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrNotDirectory, ce.Code)
}

// faultyFS fails writes or moves on demand
type faultyFS struct {
	fsys.FS
	failWrite bool
	failMove  bool
	deleted   []string
}

func (f *faultyFS) WriteFile(ctx context.Context, location string, data []byte) error {
	if f.failWrite {
		// leave a partial file behind like an interrupted upload
		if err := f.FS.WriteFile(ctx, location, data[:len(data)/2]); err != nil {
			return err
		}
		return fmt.Errorf("disk full")
	}
	return f.FS.WriteFile(ctx, location, data)
}

func (f *faultyFS) Move(ctx context.Context, source, dest string) error {
	if f.failMove {
		return fmt.Errorf("cross-device link")
	}
	return f.FS.Move(ctx, source, dest)
}

func (f *faultyFS) Delete(ctx context.Context, location string) error {
	f.deleted = append(f.deleted, location)
	return f.FS.Delete(ctx, location)
}

func TestGenerate_FailedWriteKeepsPreviousOutput(t *testing.T) {
	for _, tt := range []struct {
		name string
		fs   *faultyFS
	}{
		{"write", &faultyFS{FS: fsys.New(), failWrite: true}},
		{"move", &faultyFS{FS: fsys.New(), failMove: true}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			dir := fixtureApp(t)
			target := filepath.Join(dir, "paths.ts")
			require.NoError(t, os.WriteFile(target, []byte("// previous"), 0644))

			opts := options(dir)
			opts.FS = tt.fs
			_, err := Generate(context.Background(), opts)
			require.Error(t, err)
			assert.True(t, errors.IsIO(err))

			content, err := os.ReadFile(target)
			require.NoError(t, err)
			assert.Equal(t, "// previous", string(content))

			assert.Len(t, tt.fs.deleted, 1, "temporary file is removed")
			assertNoStagedFiles(t, dir)
		})
	}
}

func TestGenerate_LogsWarningsAndCompletion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "url"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "url", "page.tsx"), nil, 0644))

	core, logs := observer.New(zap.DebugLevel)
	opts := options(dir)
	opts.Logger = zap.New(core)

	result, err := Generate(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, errors.ErrShadowedAccessor, result.Warnings[0].Code)

	assert.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterMessage("generated paths").Len())
	assert.NotZero(t, logs.FilterMessage("scanning directory").Len())
}
