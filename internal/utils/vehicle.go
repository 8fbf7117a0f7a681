package utils

import "fmt"

// FormatVehicleID maps an opaque vehicle id to a short display code such as "V585".
// The first three characters are read as hex (stopping at the first non-hex one),
// reduced modulo 1000. Different ids may share a code.
func FormatVehicleID(id string) string {
	n := 0
	for i := 0; i < len(id) && i < 3; i++ {
		d, ok := hexDigit(id[i])
		if !ok {
			break
		}
		n = n*16 + d
	}
	return fmt.Sprintf("V%03d", n%1000)
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
