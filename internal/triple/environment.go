package triple

import "strings"

// Environment is the ABI/environment component of a target triple.
type Environment int

const (
	UnknownEnvironment Environment = iota
	GNU
	GNUABIN32
	GNUABI64
	GNUEABI
	GNUEABIHF
	GNUX32
	GNUILP32
	CODE16
	EABI
	EABIHF
	Android
	Musl
	MuslEABI
	MuslEABIHF
	MuslX32
	MSVC
	Itanium
	Cygnus
	CoreCLR
	Simulator
	MacABI
)

// envPrefixes is matched in order. Longer spellings that share a prefix with
// a shorter one (gnueabihf, gnueabi, gnu) must come first.
var envPrefixes = []struct {
	prefix string
	env    Environment
}{
	{"eabihf", EABIHF},
	{"eabi", EABI},
	{"gnuabin32", GNUABIN32},
	{"gnuabi64", GNUABI64},
	{"gnueabihf", GNUEABIHF},
	{"gnueabi", GNUEABI},
	{"gnux32", GNUX32},
	{"gnu_ilp32", GNUILP32},
	{"code16", CODE16},
	{"gnu", GNU},
	{"android", Android},
	{"musleabihf", MuslEABIHF},
	{"musleabi", MuslEABI},
	{"muslx32", MuslX32},
	{"musl", Musl},
	{"msvc", MSVC},
	{"itanium", Itanium},
	{"cygnus", Cygnus},
	{"coreclr", CoreCLR},
	{"simulator", Simulator},
	{"macabi", MacABI},
}

func (e Environment) String() string {
	for _, p := range envPrefixes {
		if p.env == e {
			return p.prefix
		}
	}
	return "unknown"
}

func parseEnvironment(name string) Environment {
	for _, p := range envPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.env
		}
	}
	return UnknownEnvironment
}
