package chk

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

// Filesystem collaborator checks. Existence checks treat any stat
// failure as "absent" and never fail; the containment check fails with
// an I/O error when the path cannot be read, because a missing file is
// indistinguishable from a false answer there.

// FileExists is true iff path names an existing regular file.
func FileExists(path string) Check {
	return New(
		describe("file-exists", path),
		func(_ context.Context) (bool, error) {
			info, err := os.Stat(path)
			if err != nil {
				return false, nil
			}

			return info.Mode().IsRegular(), nil
		},
	)
}

// DirectoryExists is true iff path names an existing directory.
func DirectoryExists(path string) Check {
	return New(
		describe("directory-exists", path),
		func(_ context.Context) (bool, error) {
			info, err := os.Stat(path)
			if err != nil {
				return false, nil
			}

			return info.IsDir(), nil
		},
	)
}

// FileContains is true iff the file at path contains needle. Reading
// re-occurs on every evaluation, so the check observes file changes.
func FileContains(path string, needle []byte) Check {
	return New(
		fmt.Sprintf("file-contains(%s, %q)", path, needle),
		func(_ context.Context) (bool, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return false, fmt.Errorf("chk: read %s: %w", path, err)
			}

			return bytes.Contains(data, needle), nil
		},
	)
}
