// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single segment name, e.g. `handle` or `primary-db`.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidName reports whether name may be used as a single address segment.
func ValidName(name string) bool {
	if name == "-" || name == "_" {
		return false
	}
	return segmentRegex.MatchString(name)
}

// Parse creates a new Address by parsing its canonical dotted representation.
func Parse(raw string) (*Address, error) {
	if raw == "" {
		return nil, fmt.Errorf("reference cannot be empty")
	}

	addr := &Address{}
	for _, segment := range strings.Split(raw, ".") {
		if segment == "" {
			return nil, fmt.Errorf("reference %q contains an empty segment", raw)
		}
		if !ValidName(segment) {
			return nil, fmt.Errorf("invalid segment %q in reference %q", segment, raw)
		}
		addr.Path = append(addr.Path, segment)
	}

	return addr, nil
}
