package options

import "strings"

// Arg is one recognized argument.
type Arg struct {
	ID       ID
	Spelling string // the prefix and name as written
	Values   []string
	Index    int // position of the token in the parsed slice
}

// ArgList is the result of Table.Parse. It is read-only after parsing.
type ArgList struct {
	args []Arg

	// MissingArgIndex is the index of an option whose value is missing,
	// and MissingArgCount how many values it lacks. Count is 0 when every
	// option got its value.
	MissingArgIndex int
	MissingArgCount int
}

// Parse classifies args. Unknown options and positional arguments are
// recorded rather than rejected; the delegate decides what is valid.
func (t *Table) Parse(args []string) *ArgList {
	l := &ArgList{}
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if tok == "" || tok == "-" || !strings.HasPrefix(tok, "-") {
			l.args = append(l.args, Arg{ID: Input, Values: []string{tok}, Index: i})
			continue
		}

		info, prefix, ok := t.match(tok)
		if !ok {
			l.args = append(l.args, Arg{ID: Unknown, Spelling: tok, Index: i})
			continue
		}

		spelling := prefix + info.Name
		rest := tok[len(spelling):]
		arg := Arg{ID: info.ID, Spelling: spelling, Index: i}
		switch info.Kind {
		case Joined:
			arg.Values = []string{rest}
		case JoinedOrSeparate:
			if rest != "" {
				arg.Values = []string{rest}
				break
			}
			fallthrough
		case Separate:
			if i+1 >= len(args) {
				l.MissingArgIndex, l.MissingArgCount = i, 1
				break
			}
			i++
			arg.Values = []string{args[i]}
		}
		l.args = append(l.args, arg)
	}
	return l
}

// match returns the option with the longest spelling that tok starts with.
// Flags only match when the spelling is the whole token, and Separate
// options only when nothing is joined to them.
func (t *Table) match(tok string) (Info, string, bool) {
	var (
		best       Info
		bestPrefix string
		found      bool
	)
	for _, info := range t.infos {
		for _, p := range info.Prefixes {
			spelling := p + info.Name
			if !strings.HasPrefix(tok, spelling) {
				continue
			}
			if (info.Kind == Flag || info.Kind == Separate) && len(tok) != len(spelling) {
				continue
			}
			if found && len(spelling) <= len(bestPrefix)+len(best.Name) {
				continue
			}
			best, bestPrefix, found = info, p, true
		}
	}
	return best, bestPrefix, found
}

// Has reports whether any of ids was present.
func (l *ArgList) Has(ids ...ID) bool {
	for _, a := range l.args {
		for _, id := range ids {
			if a.ID == id {
				return true
			}
		}
	}
	return false
}

// last returns the last occurrence of id, or nil.
func (l *ArgList) last(id ID) *Arg {
	for i := len(l.args) - 1; i >= 0; i-- {
		if l.args[i].ID == id {
			return &l.args[i]
		}
	}
	return nil
}

// Inputs returns the positional arguments in order.
func (l *ArgList) Inputs() []string {
	var in []string
	for _, a := range l.args {
		if a.ID == Input {
			in = append(in, a.Values[0])
		}
	}
	return in
}

// unknown returns the options the table did not recognize, in order.
func (l *ArgList) unknown() []string {
	var u []string
	for _, a := range l.args {
		if a.ID == Unknown {
			u = append(u, a.Spelling)
		}
	}
	return u
}
