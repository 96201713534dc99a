package stylec

import "fmt"

// ConfigError is a configuration error raised at declaration/compile time:
// an invalid shorthand-strategy selection, a rejected shorthand, or invalid
// pseudo-selector syntax. It is fatal to the compilation of the declaration
// that caused it and carries a remediation hint for the caller.
type ConfigError struct {
	Msg  string
	Hint string
}

func (e *ConfigError) Error() string {
	if e.Hint != "" {
		return e.Msg + " (" + e.Hint + ")"
	}
	return e.Msg
}

func newConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
