package driver

import (
	"lld-standalone/internal/policy"
	"lld-standalone/internal/triple"
)

const flavorFlag = "-flavor"

// Assemble builds the delegate's argument vector: delegatePath, the
// platform defaults for t, then userArgs. A leading "-flavor <value>" pair
// is dropped. If -flavor is the only argument its value is missing; the
// flag is kept so the delegate rejects it, and a *FlavorError is returned
// for the caller to report. The vector is complete either way.
func Assemble(delegatePath string, t triple.Triple, userArgs []string) ([]string, error) {
	defaults := policy.AugmentationsFor(t)

	argv := make([]string, 0, 1+len(defaults)+len(userArgs))
	argv = append(argv, delegatePath)
	argv = append(argv, defaults...)

	var err error
	if len(userArgs) > 0 && userArgs[0] == flavorFlag {
		if len(userArgs) < 2 {
			err = &FlavorError{Flag: flavorFlag}
		} else {
			userArgs = userArgs[2:]
		}
	}
	return append(argv, userArgs...), err
}
