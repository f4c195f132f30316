package stattests

import (
	"strings"

	"github.com/FooBarShebang/statistics-lib-sub001/errkind"
)

// Config holds the settings shared by the test constructors.
type Config struct {
	ConfidenceLevel float64 `yaml:"confidence_level"` // Probability of not rejecting a true null hypothesis (default: 0.95)
}

// DefaultConfig returns the default test settings.
func DefaultConfig() Config {
	return Config{ConfidenceLevel: 0.95}
}

// Validate checks that the confidence level lies in (0, 1).
func (c Config) Validate() error {
	if !(c.ConfidenceLevel > 0 && c.ConfidenceLevel < 1) {
		return errkind.Valuef("confidence level must be in (0, 1), got %g", c.ConfidenceLevel)
	}
	return nil
}

// Mode selects the alternative hypothesis.
type Mode int

const (
	// TwoSided rejects for statistics in either tail.
	TwoSided Mode = iota
	// Greater rejects for statistics in the upper tail.
	Greater
	// Less rejects for statistics in the lower tail.
	Less
)

func (m Mode) String() string {
	switch m {
	case TwoSided:
		return "two-sided"
	case Greater:
		return "greater"
	case Less:
		return "less"
	}
	return "unknown"
}

// ParseMode converts "two-sided", "greater" or "less" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "two-sided", "twosided", "both":
		return TwoSided, nil
	case "greater", "upper", "right":
		return Greater, nil
	case "less", "lower", "left":
		return Less, nil
	}
	return 0, errkind.Valuef("unknown test mode %q", s)
}
