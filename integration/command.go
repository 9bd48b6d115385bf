// integration/command.go
/* The integration package exposes the adapter as a set of named commands the
hosting orchestration runtime can dispatch. Each command declares an argument
schema, validates its arguments locally, performs one domain operation, and
returns both the structured object (for the caller's context) and a markdown
table projection (for display). */
package integration

import (
	"context"
	"strconv"
	"strings"

	"github.com/harborsec/go-jamf-classic-adapter/jamf"
)

// ArgSpec documents one command argument.
type ArgSpec struct {
	Name        string
	Description string
	Required    bool
	Default     string
	Allowed     []string
}

// Args carries the validated string arguments of one invocation.
type Args map[string]string

// String returns the argument value, or the empty string when absent.
func (a Args) String(name string) string {
	return a[name]
}

// Int parses an integer argument. Absent values return zero; malformed values
// return an invalid-argument error.
func (a Args) Int(name string) (int, error) {
	raw, ok := a[name]
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidArgf("argument %q must be an integer, got %q", name, raw)
	}
	return v, nil
}

// Bool parses a boolean argument. Absent values return false; malformed
// values return an invalid-argument error.
func (a Args) Bool(name string) (bool, error) {
	raw, ok := a[name]
	if !ok || raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, invalidArgf("argument %q must be a boolean, got %q", name, raw)
	}
	return v, nil
}

// Command binds a name and argument schema to one domain operation.
type Command struct {
	Name        string
	Description string
	Args        []ArgSpec
	Run         func(ctx context.Context, args Args) (*Result, error)
}

// Result is the outcome of one command: the structured object placed in the
// caller's context under a resource-specific key, and a human-readable
// markdown rendering. The structured output is authoritative; the table is a
// curated projection.
type Result struct {
	Outputs  map[string]any
	Readable string
}

// validateArgs checks the supplied arguments against the schema: unknown
// arguments, missing required arguments, and values outside an Allowed set
// all fail before any network call. Defaults are applied in the returned map.
func validateArgs(specs []ArgSpec, supplied map[string]string) (Args, error) {
	byName := make(map[string]ArgSpec, len(specs))
	for _, spec := range specs {
		byName[spec.Name] = spec
	}

	args := Args{}
	for name, value := range supplied {
		spec, ok := byName[name]
		if !ok {
			return nil, invalidArgf("unknown argument %q", name)
		}
		if len(spec.Allowed) > 0 && value != "" && !containsFold(spec.Allowed, value) {
			return nil, invalidArgf("argument %q must be one of [%s], got %q",
				name, strings.Join(spec.Allowed, ", "), value)
		}
		args[name] = value
	}

	for _, spec := range specs {
		if args[spec.Name] == "" && spec.Default != "" {
			args[spec.Name] = spec.Default
		}
		if spec.Required && args[spec.Name] == "" {
			return nil, invalidArgf("argument %q is required", spec.Name)
		}
	}

	return args, nil
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}

func invalidArgf(format string, args ...any) error {
	return jamf.InvalidArgumentf(format, args...)
}
