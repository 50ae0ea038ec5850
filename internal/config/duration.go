package config

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a config value written either as "1m30s" or as a number of seconds.
type Duration struct {
	time.Duration
}

func DurationFrom(d time.Duration) Duration {
	return Duration{Duration: d}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		secs, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid duration %q: %w", node.Line, node.Value, err)
		}
		d.Duration = time.Duration(secs * float64(time.Second))
	case "!!null":
		d.Duration = 0
	default:
		parsed, err := time.ParseDuration(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: invalid duration %q: %w", node.Line, node.Value, err)
		}
		d.Duration = parsed
	}
	return nil
}
