package triple

import "runtime"

// DefaultTargetTriple overrides the host-derived default target. It is
// meant to be set at build time:
//
//	go build -ldflags "-X lld-standalone/internal/triple.DefaultTargetTriple=aarch64--netbsd"
var DefaultTargetTriple = ""

var goarchToArch = map[string]string{
	"386":      "i386",
	"amd64":    "x86_64",
	"arm":      "arm",
	"arm64":    "aarch64",
	"loong64":  "loongarch64",
	"mips":     "mips",
	"mipsle":   "mipsel",
	"mips64":   "mips64",
	"mips64le": "mips64el",
	"ppc64":    "powerpc64",
	"ppc64le":  "powerpc64le",
	"riscv64":  "riscv64",
	"s390x":    "s390x",
	"wasm":     "wasm32",
}

// HostTriple returns the triple of the machine running the process, or
// DefaultTargetTriple when it is set.
func HostTriple() Triple {
	if DefaultTargetTriple != "" {
		return Parse(DefaultTargetTriple)
	}
	return Parse(hostTripleString(runtime.GOARCH, runtime.GOOS))
}

func hostTripleString(goarch, goos string) string {
	arch, ok := goarchToArch[goarch]
	if !ok {
		arch = goarch
	}
	switch goos {
	case "darwin", "ios":
		if goarch == "arm64" {
			arch = "arm64"
		}
		return arch + "-apple-" + goos
	case "linux":
		return arch + "-unknown-linux-gnu"
	case "windows":
		return arch + "-pc-windows-msvc"
	case "illumos":
		return arch + "-unknown-solaris"
	case "js", "wasip1":
		return "wasm32-unknown-wasi"
	}
	return arch + "-unknown-" + goos
}
