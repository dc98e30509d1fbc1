package sand

import (
	"strconv"
	"strings"
)

// Material identifies what occupies a grid cell. It is the entire cell state.
type Material uint8

const (
	Empty Material = iota
	Sand
	Mud
	Water
)

var materialNames = [...]string{
	Empty: "empty",
	Sand:  "sand",
	Mud:   "mud",
	Water: "water",
}

// String returns the lower-case material name.
func (m Material) String() string {
	if int(m) < len(materialNames) {
		return materialNames[m]
	}
	return "material(" + strconv.Itoa(int(m)) + ")"
}

// ParseMaterial resolves a material from its name, case-insensitively.
func ParseMaterial(s string) (Material, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range materialNames {
		if name == s {
			return Material(i), true
		}
	}
	return Empty, false
}
