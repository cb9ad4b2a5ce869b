package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of values.
type enumValue struct {
	typeName string
	value    string
	allowed  []string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(typeName, def string, allowed ...string) *enumValue {
	return &enumValue{typeName: typeName, value: def, allowed: allowed}
}

func (e *enumValue) String() string {
	return e.value
}

// Set accepts any allowed value, case-insensitively.
func (e *enumValue) Set(s string) error {
	v := strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(e.allowed, v) {
		return fmt.Errorf("must be one of: %s", strings.Join(e.allowed, ", "))
	}
	e.value = v
	return nil
}

func (e *enumValue) Type() string {
	return e.typeName
}
