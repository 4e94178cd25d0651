//go:build !unix

package driver

import "os"

func signalName(ps *os.ProcessState) string {
	if ps == nil {
		return ""
	}
	return ps.String()
}
