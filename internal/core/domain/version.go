package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// ValidVersion reports whether s is a well-formed dotted-numeric version
// such as "1.2.3". Validation happens at the service boundary; the
// comparator below assumes its inputs already passed it.
func ValidVersion(s string) bool {
	return versionPattern.MatchString(s)
}

// CompareVersions compares two dotted-numeric versions component by
// component, left to right, numerically. Missing trailing components count
// as zero, so "1.2" equals "1.2.0" and "1.10.0" sorts above "1.9.0".
// Returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}
