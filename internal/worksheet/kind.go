package worksheet

import (
	"fmt"
	"strings"
)

// Kind names one of the three surface lists.
type Kind string

const (
	KindWall   Kind = "wall"
	KindDoor   Kind = "door"
	KindWindow Kind = "window"
)

// Kinds lists every surface kind in display order.
var Kinds = []Kind{KindWall, KindDoor, KindWindow}

// ParseKind accepts the singular or plural form ("wall", "walls").
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	switch k {
	case KindWall, KindDoor, KindWindow:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Label returns the capitalized name used in reports ("Wall", "Door", "Window").
func (k Kind) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}
