// Package policy maps a target triple to the linker arguments its platform
// expects ahead of the user's own.
package policy

import "lld-standalone/internal/triple"

// archRule injects flag when the triple belongs to family (or, without a
// family, its architecture is one of arches) and, if envs is non-empty, its
// environment is one of envs.
type archRule struct {
	family func(triple.Triple) bool
	arches []triple.Arch
	envs   []triple.Environment
	flag   string
}

func (r archRule) matches(t triple.Triple) bool {
	inFamily := containsArch(r.arches, t.Arch)
	if r.family != nil {
		inFamily = r.family(t)
	}
	return inFamily && (len(r.envs) == 0 || containsEnv(r.envs, t.Environment))
}

// osPolicy is the argument layout for one operating system. The output
// order is fixed, then the first matching image base rule, then the first
// matching search path rule, then trailing.
type osPolicy struct {
	fixed       []string
	imageBase   []archRule
	searchPaths []archRule
	trailing    []string
}

var isARM = triple.Triple.IsARM

// The NetBSD driver relies on the linker knowing the default search paths.
// Keep in sync with clang's NetBSD toolchain.
var netbsd = osPolicy{
	fixed: []string{
		"--no-rosegment",      // ld.elf_so can't handle a separate RO segment
		"--disable-new-dtags", // no RUNPATH
		"-znognustack",
	},
	imageBase: []archRule{
		{arches: []triple.Arch{triple.AArch64, triple.AArch64BE}, flag: "--image-base=0x200100000"},
	},
	searchPaths: []archRule{
		{arches: []triple.Arch{triple.X86}, flag: "-L=/usr/lib/i386"},
		{family: isARM, envs: []triple.Environment{triple.EABI, triple.GNUEABI}, flag: "-L=/usr/lib/eabi"},
		{family: isARM, envs: []triple.Environment{triple.EABIHF, triple.GNUEABIHF}, flag: "-L=/usr/lib/eabihf"},
		{family: isARM, flag: "-L=/usr/lib/oabi"},
		{arches: []triple.Arch{triple.PPC}, flag: "-L=/usr/lib/powerpc"},
		{arches: []triple.Arch{triple.Sparc}, flag: "-L=/usr/lib/sparc"},
	},
	trailing: []string{"-L=/usr/lib"},
}

// policies is checked in order; the first platform that applies wins.
var policies = []struct {
	applies func(triple.Triple) bool
	policy  osPolicy
}{
	{triple.Triple.IsOSNetBSD, netbsd},
}

// AugmentationsFor returns the arguments to prepend for t. The result is a
// new slice owned by the caller; it is empty for platforms without a
// policy.
func AugmentationsFor(t triple.Triple) []string {
	for _, p := range policies {
		if p.applies(t) {
			return p.policy.apply(t)
		}
	}
	return nil
}

func (p osPolicy) apply(t triple.Triple) []string {
	args := append([]string(nil), p.fixed...)
	if r, ok := firstMatch(p.imageBase, t); ok {
		args = append(args, r.flag)
	}
	if r, ok := firstMatch(p.searchPaths, t); ok {
		args = append(args, r.flag)
	}
	return append(args, p.trailing...)
}

func firstMatch(rules []archRule, t triple.Triple) (archRule, bool) {
	for _, r := range rules {
		if r.matches(t) {
			return r, true
		}
	}
	return archRule{}, false
}

func containsArch(list []triple.Arch, a triple.Arch) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}

func containsEnv(list []triple.Environment, e triple.Environment) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}
