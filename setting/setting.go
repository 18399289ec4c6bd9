// SPDX-License-Identifier: MIT

package setting

import (
	"errors"
	"log/slog"
	"strings"
)

// ErrTooManyPreProcessors is returned when more than one preprocessor is
// enabled.
var ErrTooManyPreProcessors = errors.New("setting: at most one preprocessor may be enabled")

// Setting is a named boolean switch.
type Setting interface {
	// FlagName is the command-line flag, with its leading dashes.
	FlagName() string
	// VarName is the snake_case identifier used in configuration files.
	VarName() string
	Help() string
	Enabled() bool
	SetEnabled(enabled bool)
	// ApplyFlag records that the user passed FlagName and applies its effect.
	ApplyFlag()
	WasSpecifiedByUser() bool
	MarkSpecified()
	WasUsedByAlgo() bool
	MarkUsed()
}

// state is the bookkeeping shared by every setting.
type state struct {
	enabled   bool
	specified bool
	used      bool
}

func (s *state) Enabled() bool            { return s.enabled }
func (s *state) SetEnabled(enabled bool)  { s.enabled = enabled }
func (s *state) WasSpecifiedByUser() bool { return s.specified }
func (s *state) MarkSpecified()           { s.specified = true }
func (s *state) WasUsedByAlgo() bool      { return s.used }
func (s *state) MarkUsed()                { s.used = true }

// flagFromVar turns "lazy_add" into "--disable-lazy-add".
func flagFromVar(prefix, varName string) string {
	return "--" + prefix + strings.ReplaceAll(varName, "_", "-")
}

// Defaults returns a fresh list of every setting in its default state.
func Defaults() []Setting {
	return []Setting{
		NewOptimizeEmpty(),
		NewLazyAdd(),
		NewOptimizeFormat(),
		NewIndexExploding(),
	}
}

// ByVarName returns the setting of list named varName.
func ByVarName(list []Setting, varName string) (Setting, bool) {
	for _, s := range list {
		if s.VarName() == varName {
			return s, true
		}
	}

	return nil, false
}

// Clone returns settings with the same enabled flags and fresh bookkeeping.
func Clone(list []Setting) []Setting {
	out := Defaults()
	for _, s := range out {
		if src, ok := ByVarName(list, s.VarName()); ok {
			s.SetEnabled(src.Enabled())
		}
	}

	return out
}

// ReportUnused logs a warning for every setting the user specified but no
// solver consulted. It returns the flag names it reported.
func ReportUnused(list []Setting, log *slog.Logger) []string {
	var unused []string
	for _, s := range list {
		if s.WasSpecifiedByUser() && !s.WasUsedByAlgo() {
			unused = append(unused, s.FlagName())
			if log != nil {
				log.Warn("algo setting was specified but not used by the algorithm", "flag", s.FlagName())
			}
		}
	}

	return unused
}
