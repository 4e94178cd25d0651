// Package options recognizes the handful of linker options the driver
// itself cares about. Everything else is passed through untouched.
package options

// ID identifies an option in a Table.
type ID int

const (
	Input ID = iota
	Unknown
	V
	Version
	Flavor
)

// Kind describes how an option takes its value.
type Kind int

const (
	// Flag takes no value and must match the whole token.
	Flag Kind = iota
	// Joined takes its value from the rest of the token (-Lfoo).
	Joined
	// Separate takes its value from the next token (-flavor gnu).
	Separate
	// JoinedOrSeparate is Joined when the token has a rest, else Separate.
	JoinedOrSeparate
)

// Info describes one option spelling.
type Info struct {
	ID       ID
	Prefixes []string
	Name     string
	Kind     Kind
	Help     string
}

// Table is a static set of options.
type Table struct {
	infos []Info
}

// NewTable returns a table over infos.
func NewTable(infos []Info) *Table {
	return &Table{infos: infos}
}

// Standard is the option table of the driver.
var Standard = NewTable([]Info{
	{ID: V, Prefixes: []string{"-"}, Name: "v", Kind: Flag, Help: "Display the version number"},
	{ID: Version, Prefixes: []string{"--", "-"}, Name: "version", Kind: Flag, Help: "Display the version number and exit"},
	{ID: Flavor, Prefixes: []string{"-"}, Name: "flavor", Kind: Separate, Help: "Linker flavor, ignored"},
})
