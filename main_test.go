package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"lld-standalone/internal/driver"
	"lld-standalone/internal/triple"
)

// installFakeLinker puts an ld.lld on a fresh PATH that records its
// arguments, one per line, and exits with code. It returns the record file.
func installFakeLinker(t *testing.T, code string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake linker is a shell script")
	}
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args.txt")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > \"$FAKE_LD_ARGS\"\nexit " + code + "\n"
	if err := os.WriteFile(filepath.Join(dir, "ld.lld"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
	t.Setenv("FAKE_LD_ARGS", argsFile)
	return argsFile
}

func newTestDriver(stdout, stderr *bytes.Buffer) *driver.Driver {
	d := driver.New()
	d.Resolver.Host = func() triple.Triple { return triple.Parse("x86_64-unknown-linux-gnu") }
	d.Stdout, d.Stderr = stdout, stderr
	return d
}

func TestExecutePassesFlagsThrough(t *testing.T) {
	argsFile := installFakeLinker(t, "4")

	var stdout, stderr bytes.Buffer
	d := newTestDriver(&stdout, &stderr)

	// --help and --version would be eaten by a command that parses flags.
	code := execute(d, []string{"ld.lld", "--help", "--version", "-o", "out"})
	if code != 4 {
		t.Fatalf("exit code = %d, want 4 (stderr %q)", code, stderr.String())
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("linker was not run: %v", err)
	}
	if got := strings.Fields(string(data)); strings.Join(got, " ") != "--help --version -o out" {
		t.Errorf("linker got %q", got)
	}
	if stdout.String() != "Target: x86_64-unknown-linux-gnu\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestExecuteForwardsCompletionCommandNames(t *testing.T) {
	tests := [][]string{
		{"__complete", "x"},
		{"-o", "out", "__completeNoDesc"},
		{"--", "__complete"},
		{"help"},
		{"completion", "bash"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			argsFile := installFakeLinker(t, "5")

			var stdout, stderr bytes.Buffer
			d := newTestDriver(&stdout, &stderr)

			code := execute(d, append([]string{"ld.lld"}, args...))
			if code != 5 {
				t.Fatalf("exit code = %d, want 5 (stderr %q)", code, stderr.String())
			}
			data, err := os.ReadFile(argsFile)
			if err != nil {
				t.Fatalf("linker was not run: %v", err)
			}
			if got := strings.Fields(string(data)); strings.Join(got, " ") != strings.Join(args, " ") {
				t.Errorf("linker got %q, want %q", got, args)
			}
			if stdout.Len() != 0 || stderr.Len() != 0 {
				t.Errorf("unexpected driver output: stdout %q, stderr %q", stdout.String(), stderr.String())
			}
		})
	}
}

func TestExecuteNoArguments(t *testing.T) {
	argsFile := installFakeLinker(t, "0")

	var stdout, stderr bytes.Buffer
	if code := execute(newTestDriver(&stdout, &stderr), []string{"ld.lld"}); code != 0 {
		t.Fatalf("exit code = %d (stderr %q)", code, stderr.String())
	}
	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("linker was not run: %v", err)
	}
	if strings.TrimSpace(string(data)) != "" {
		t.Errorf("linker got arguments %q", data)
	}
}
