package triple

// Vendor is the vendor component of a target triple. It never affects
// policy decisions.
type Vendor int

const (
	UnknownVendor Vendor = iota
	AMD
	Apple
	CSR
	Freescale
	IBM
	ImaginationTechnologies
	Mesa
	MipsTechnologies
	NVIDIA
	OpenEmbedded
	PC
	SCEI
	SUSE
)

var vendorNames = map[string]Vendor{
	"amd":    AMD,
	"apple":  Apple,
	"csr":    CSR,
	"fsl":    Freescale,
	"ibm":    IBM,
	"img":    ImaginationTechnologies,
	"mesa":   Mesa,
	"mti":    MipsTechnologies,
	"nvidia": NVIDIA,
	"oe":     OpenEmbedded,
	"pc":     PC,
	"scei":   SCEI,
	"suse":   SUSE,
}

func (v Vendor) String() string {
	for name, vv := range vendorNames {
		if vv == v {
			return name
		}
	}
	return "unknown"
}

func parseVendor(name string) Vendor {
	return vendorNames[name]
}
