package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPathArg(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "/media/movies", "/media/movies"},
		{"whitespace", "  /media/movies \n", "/media/movies"},
		{"double quotes", `"/media/my movies"`, "/media/my movies"},
		{"single quotes", `'/media/my movies'`, "/media/my movies"},
		{"quotes and whitespace", ` "/media" `, "/media"},
		{"one layer only", `""/media""`, `"/media"`},
		{"mismatched quotes kept", `"/media'`, `"/media'`},
		{"lone quote kept", `"`, `"`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanPathArg(tt.in))
		})
	}
}

func TestValidatePath_Directory(t *testing.T) {
	dir := t.TempDir()
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	for _, raw := range []string{dir, dir + "/", `"` + dir + `"`, "  '" + dir + "'  "} {
		got, err := ValidatePath(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestValidatePath_ResolvesSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got, err := ValidatePath(link)
	require.NoError(t, err)
	want, _ := filepath.EvalSymlinks(target)
	assert.Equal(t, want, got)
}

func TestValidatePath_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "Movies"), 0o755))
	t.Setenv("HOME", home)

	got, err := ValidatePath("~/Movies")
	require.NoError(t, err)
	want, _ := filepath.EvalSymlinks(filepath.Join(home, "Movies"))
	assert.Equal(t, want, got)
}

func TestValidatePath_Relative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lib"), 0o755))
	t.Chdir(dir)

	got, err := ValidatePath("lib")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "lib", filepath.Base(got))
}

func TestValidatePath_Failures(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "movie.mkv")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name    string
		raw     string
		want    error
		message string
	}{
		{"missing", filepath.Join(dir, "nope"), ErrNotExist, "path does not exist: '"},
		{"missing quoted", `"` + filepath.Join(dir, "nope") + `"`, ErrNotExist, "path does not exist: '"},
		{"file", file, ErrNotDir, "path is not a directory: '"},
		{"below a file", filepath.Join(file, "sub"), ErrNotExist, "path does not exist: '"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidatePath(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var pe *PathError
			require.True(t, errors.As(err, &pe))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestPathError_Messages(t *testing.T) {
	e := &PathError{Path: "/x", Err: ErrUnresolvable, Cause: errors.New("loop")}
	assert.Equal(t, "cannot resolve path '/x': loop", e.Error())
	assert.True(t, errors.Is(e, ErrUnresolvable))

	e = &PathError{Path: "/x", Err: ErrNotDir}
	assert.Equal(t, "path is not a directory: '/x'", e.Error())
}
