package triple

import "strings"

// OS is the operating system component of a target triple.
type OS int

const (
	UnknownOS OS = iota
	AIX
	AMDHSA
	CUDA
	Darwin
	DragonFly
	ELFIAMCU
	Emscripten
	FreeBSD
	Fuchsia
	Haiku
	Hurd
	IOS
	KFreeBSD
	Linux
	MacOSX
	NetBSD
	OpenBSD
	PS4
	PS5
	RTEMS
	Serenity
	Solaris
	TvOS
	WASI
	WatchOS
	Win32
	ZOS
)

// osPrefixes is matched in order; the first prefix that matches wins.
var osPrefixes = []struct {
	prefix string
	os     OS
}{
	{"aix", AIX},
	{"amdhsa", AMDHSA},
	{"cuda", CUDA},
	{"darwin", Darwin},
	{"dragonfly", DragonFly},
	{"elfiamcu", ELFIAMCU},
	{"emscripten", Emscripten},
	{"freebsd", FreeBSD},
	{"fuchsia", Fuchsia},
	{"haiku", Haiku},
	{"hurd", Hurd},
	{"ios", IOS},
	{"kfreebsd", KFreeBSD},
	{"linux", Linux},
	{"macos", MacOSX},
	{"netbsd", NetBSD},
	{"openbsd", OpenBSD},
	{"ps4", PS4},
	{"ps5", PS5},
	{"rtems", RTEMS},
	{"serenity", Serenity},
	{"solaris", Solaris},
	{"tvos", TvOS},
	{"wasi", WASI},
	{"watchos", WatchOS},
	{"win32", Win32},
	{"windows", Win32},
	{"zos", ZOS},
}

func (o OS) String() string {
	if o == UnknownOS {
		return "unknown"
	}
	if o == MacOSX {
		return "macosx"
	}
	for _, p := range osPrefixes {
		if p.os == o {
			return p.prefix
		}
	}
	return "unknown"
}

func parseOS(name string) OS {
	for _, p := range osPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.os
		}
	}
	return UnknownOS
}
