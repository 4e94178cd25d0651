package driver

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

func diffArgs(want, got []string) string {
	d, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(want, "\n") + "\n"),
		B:        difflib.SplitLines(strings.Join(got, "\n") + "\n"),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	return d
}

func equalArgs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// fakeLinker installs an ld.lld shell script into a fresh PATH. The script
// writes its arguments, one per line, to the returned file, prints
// "linked" and exits with $FAKE_LD_EXIT (default 0).
func fakeLinker(t *testing.T, body string) (dir, argsFile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake linker is a shell script")
	}

	dir = t.TempDir()
	argsFile = filepath.Join(dir, "args.txt")
	if body == "" {
		body = `printf '%s\n' "$@" > "$FAKE_LD_ARGS"
echo linked
exit ${FAKE_LD_EXIT:-0}`
	}
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(filepath.Join(dir, "ld.lld"), []byte(script), 0755); err != nil {
		t.Fatalf("failed to write fake linker: %v", err)
	}
	t.Setenv("PATH", dir)
	t.Setenv("FAKE_LD_ARGS", argsFile)
	return dir, argsFile
}

func readArgs(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("fake linker did not record its arguments: %v", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
