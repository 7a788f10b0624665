package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// Sentinel errors wrapped by [PathError].
var (
	ErrUnresolvable = errors.New("cannot resolve path")
	ErrNotExist     = errors.New("path does not exist")
	ErrNotDir       = errors.New("path is not a directory")
)

// PathError describes why a user-supplied library path was rejected.
type PathError struct {
	Path  string // Cleaned or resolved path, whichever was reached.
	Err   error  // One of the sentinels above.
	Cause error  // Underlying OS error, if any.
}

func (e *PathError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v '%s': %v", e.Err, e.Path, e.Cause)
	}
	return fmt.Sprintf("%v: '%s'", e.Err, e.Path)
}

func (e *PathError) Unwrap() error { return e.Err }

// CleanPathArg trims whitespace and one layer of matching surrounding
// single or double quotes, as left behind by drag-and-drop or copy-paste.
func CleanPathArg(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return s
}

// expandHome replaces a leading "~" or "~/" with the user's home directory.
// "~user" forms are left alone.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// isNotExist reports whether err means the path is absent, including a
// non-directory component in the middle of it ("movie.mkv/sub").
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// ValidatePath cleans raw and returns the absolute, symlink-resolved path of
// an existing directory. Failures are returned as *PathError.
func ValidatePath(raw string) (string, error) {
	cleaned := CleanPathArg(raw)

	expanded, err := expandHome(cleaned)
	if err != nil {
		return "", &PathError{Path: cleaned, Err: ErrUnresolvable, Cause: err}
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", &PathError{Path: cleaned, Err: ErrUnresolvable, Cause: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if isNotExist(err) {
			return "", &PathError{Path: abs, Err: ErrNotExist}
		}
		return "", &PathError{Path: abs, Err: ErrUnresolvable, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if isNotExist(err) {
			return "", &PathError{Path: resolved, Err: ErrNotExist}
		}
		return "", &PathError{Path: resolved, Err: ErrUnresolvable, Cause: err}
	}
	if !info.IsDir() {
		return "", &PathError{Path: resolved, Err: ErrNotDir}
	}
	return resolved, nil
}
