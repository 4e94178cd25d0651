package triple

import "strings"

// Arch is the architecture component of a target triple.
type Arch int

const (
	UnknownArch Arch = iota
	ARM
	ARMEB
	AArch64
	AArch64BE
	AArch64_32
	ARC
	AVR
	BPFEL
	BPFEB
	CSKY
	Hexagon
	LoongArch32
	LoongArch64
	M68k
	MIPS
	MIPSEL
	MIPS64
	MIPS64EL
	MSP430
	PPC
	PPCLE
	PPC64
	PPC64LE
	R600
	AMDGCN
	RISCV32
	RISCV64
	Sparc
	SparcV9
	SparcEL
	SystemZ
	TCE
	TCELE
	Thumb
	ThumbEB
	X86
	X86_64
	XCore
	NVPTX
	NVPTX64
	Lanai
	WASM32
	WASM64
	VE
)

var archNames = [...]string{
	UnknownArch: "unknown",
	ARM:         "arm",
	ARMEB:       "armeb",
	AArch64:     "aarch64",
	AArch64BE:   "aarch64_be",
	AArch64_32:  "aarch64_32",
	ARC:         "arc",
	AVR:         "avr",
	BPFEL:       "bpfel",
	BPFEB:       "bpfeb",
	CSKY:        "csky",
	Hexagon:     "hexagon",
	LoongArch32: "loongarch32",
	LoongArch64: "loongarch64",
	M68k:        "m68k",
	MIPS:        "mips",
	MIPSEL:      "mipsel",
	MIPS64:      "mips64",
	MIPS64EL:    "mips64el",
	MSP430:      "msp430",
	PPC:         "powerpc",
	PPCLE:       "powerpcle",
	PPC64:       "powerpc64",
	PPC64LE:     "powerpc64le",
	R600:        "r600",
	AMDGCN:      "amdgcn",
	RISCV32:     "riscv32",
	RISCV64:     "riscv64",
	Sparc:       "sparc",
	SparcV9:     "sparcv9",
	SparcEL:     "sparcel",
	SystemZ:     "s390x",
	TCE:         "tce",
	TCELE:       "tcele",
	Thumb:       "thumb",
	ThumbEB:     "thumbeb",
	X86:         "i386",
	X86_64:      "x86_64",
	XCore:       "xcore",
	NVPTX:       "nvptx",
	NVPTX64:     "nvptx64",
	Lanai:       "lanai",
	WASM32:      "wasm32",
	WASM64:      "wasm64",
	VE:          "ve",
}

func (a Arch) String() string {
	if a < 0 || int(a) >= len(archNames) {
		return archNames[UnknownArch]
	}
	return archNames[a]
}

// archSpellings lists the exact spellings that are not handled by the
// arm/thumb parser.
var archSpellings = []struct {
	arch  Arch
	names []string
}{
	{X86, []string{"i386", "i486", "i586", "i686", "i786", "i886", "i986"}},
	{X86_64, []string{"amd64", "x86_64", "x86_64h"}},
	{PPC, []string{"powerpc", "powerpcspe", "ppc", "ppc32"}},
	{PPCLE, []string{"powerpcle", "ppcle", "ppc32le"}},
	{PPC64, []string{"powerpc64", "ppu", "ppc64"}},
	{PPC64LE, []string{"powerpc64le", "ppc64le"}},
	{ARM, []string{"xscale"}},
	{ARMEB, []string{"xscaleeb"}},
	{AArch64, []string{"aarch64", "arm64", "arm64e"}},
	{AArch64BE, []string{"aarch64_be"}},
	{AArch64_32, []string{"aarch64_32", "arm64_32"}},
	{ARC, []string{"arc"}},
	{AVR, []string{"avr"}},
	{BPFEL, []string{"bpf", "bpf_le", "bpfel"}},
	{BPFEB, []string{"bpf_be", "bpfeb"}},
	{CSKY, []string{"csky"}},
	{Hexagon, []string{"hexagon"}},
	{LoongArch32, []string{"loongarch32"}},
	{LoongArch64, []string{"loongarch64"}},
	{M68k, []string{"m68k"}},
	{MIPS, []string{"mips", "mipseb", "mipsallegrex", "mipsisa32r6", "mipsr6"}},
	{MIPSEL, []string{"mipsel", "mipsallegrexel", "mipsisa32r6el", "mipsr6el"}},
	{MIPS64, []string{"mips64", "mips64eb", "mipsn32", "mipsisa64r6", "mips64r6", "mipsn32r6"}},
	{MIPS64EL, []string{"mips64el", "mipsn32el", "mipsisa64r6el", "mips64r6el", "mipsn32r6el"}},
	{MSP430, []string{"msp430"}},
	{R600, []string{"r600"}},
	{AMDGCN, []string{"amdgcn"}},
	{RISCV32, []string{"riscv32"}},
	{RISCV64, []string{"riscv64"}},
	{Sparc, []string{"sparc"}},
	{SparcEL, []string{"sparcel"}},
	{SparcV9, []string{"sparcv9", "sparc64"}},
	{SystemZ, []string{"s390x", "systemz"}},
	{TCE, []string{"tce"}},
	{TCELE, []string{"tcele"}},
	{XCore, []string{"xcore"}},
	{NVPTX, []string{"nvptx"}},
	{NVPTX64, []string{"nvptx64"}},
	{Lanai, []string{"lanai"}},
	{WASM32, []string{"wasm32"}},
	{WASM64, []string{"wasm64"}},
	{VE, []string{"ve"}},
}

var archAliases = func() map[string]Arch {
	m := make(map[string]Arch)
	for _, s := range archSpellings {
		for _, name := range s.names {
			m[name] = s.arch
		}
	}
	return m
}()

// parseArch returns the architecture and sub-architecture spelled by name.
func parseArch(name string) (Arch, string) {
	if a, ok := archAliases[name]; ok {
		return a, ""
	}
	switch {
	case strings.HasPrefix(name, "thumb"):
		return parseARMFamily(name[len("thumb"):], Thumb, ThumbEB)
	case strings.HasPrefix(name, "earm"):
		// NetBSD spells EABI arm as earm, earmv7hf, earmv6eb, ...
		rest := strings.TrimSuffix(name[len("earm"):], "hf")
		return parseARMFamily(rest, ARM, ARMEB)
	case strings.HasPrefix(name, "arm"):
		return parseARMFamily(name[len("arm"):], ARM, ARMEB)
	}
	return UnknownArch, ""
}

// parseARMFamily parses what follows "arm" or "thumb": an optional
// big-endian marker "eb" before or after an optional "v<digit>..." version.
func parseARMFamily(rest string, little, big Arch) (Arch, string) {
	arch := little
	if strings.HasPrefix(rest, "eb") {
		arch = big
		rest = rest[len("eb"):]
	} else if strings.HasSuffix(rest, "eb") {
		arch = big
		rest = strings.TrimSuffix(rest, "eb")
	}
	if rest == "" {
		return arch, ""
	}
	if len(rest) < 2 || rest[0] != 'v' || rest[1] < '0' || rest[1] > '9' {
		return UnknownArch, ""
	}
	return arch, rest
}
