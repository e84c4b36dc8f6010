package engine

import (
	"strings"
)

// Flag names understood by engines
const (
	FlagDisableGPU                = "disable-gpu"
	FlagDisableSoftwareRasterizer = "disable-software-rasterizer"
	FlagUserAgent                 = "user-agent"
)

// Flags is the parsed form of the engine flags environment variable.
// Unknown flags are kept so engines can inspect them.
type Flags struct {
	values map[string]string
	order  []string
}

// ParseFlags parses a space separated list of "--name" and "--name=value"
// tokens. Tokens without a leading dash are ignored.
func ParseFlags(raw string) Flags {
	f := Flags{values: make(map[string]string)}
	for _, token := range strings.Fields(raw) {
		if !strings.HasPrefix(token, "-") {
			continue
		}
		token = strings.TrimLeft(token, "-")
		if token == "" {
			continue
		}
		name, value, _ := strings.Cut(token, "=")
		if _, seen := f.values[name]; !seen {
			f.order = append(f.order, name)
		}
		f.values[name] = value
	}
	return f
}

// Has reports whether the flag was given
func (f Flags) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Value returns the flag's value, empty for bare flags
func (f Flags) Value(name string) string {
	return f.values[name]
}

// Names returns the flag names in the order first seen
func (f Flags) Names() []string {
	names := make([]string, len(f.order))
	copy(names, f.order)
	return names
}

// GPUDisabled reports whether hardware acceleration was turned off
func (f Flags) GPUDisabled() bool {
	return f.Has(FlagDisableGPU)
}

// String renders the flags back to command-line form
func (f Flags) String() string {
	parts := make([]string, 0, len(f.order))
	for _, name := range f.order {
		if v := f.values[name]; v != "" {
			parts = append(parts, "--"+name+"="+v)
		} else {
			parts = append(parts, "--"+name)
		}
	}
	return strings.Join(parts, " ")
}
