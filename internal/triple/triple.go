// Package triple models target triples of the form
// arch[subarch]-vendor-os-environment and resolves the triple a linker
// invocation is meant for.
package triple

import "strings"

// Triple identifies a link target. It is a value: once parsed it never
// changes, and it can be passed around freely.
type Triple struct {
	data string

	Arch        Arch
	SubArch     string
	Vendor      Vendor
	OS          OS
	Environment Environment
}

// Parse splits s on '-' and parses the components positionally:
// architecture, vendor, operating system and environment. Components that
// are missing or not recognized are left unknown. Parse never fails.
func Parse(s string) Triple {
	t := Triple{data: s}
	parts := strings.SplitN(s, "-", 4)
	if len(parts) > 0 {
		t.Arch, t.SubArch = parseArch(parts[0])
	}
	if len(parts) > 1 {
		t.Vendor = parseVendor(parts[1])
	}
	if len(parts) > 2 {
		t.OS = parseOS(parts[2])
	}
	if len(parts) > 3 {
		t.Environment = parseEnvironment(parts[3])
	}
	return t
}

// String returns the triple exactly as it was spelled.
func (t Triple) String() string {
	return t.data
}

func (t Triple) IsOSNetBSD() bool {
	return t.OS == NetBSD
}

// IsARM reports whether the triple names a 32-bit arm or thumb target.
func (t Triple) IsARM() bool {
	switch t.Arch {
	case ARM, ARMEB, Thumb, ThumbEB:
		return true
	}
	return false
}
