// Package catalog lists every demo group in its fixed presentation order
// and resolves topic names to groups.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marcodamonte/basics/internal/bindings"
	"github.com/marcodamonte/basics/internal/conversion"
	"github.com/marcodamonte/basics/internal/customtypes"
	"github.com/marcodamonte/basics/internal/expressions"
	"github.com/marcodamonte/basics/internal/runner"
)

// ErrUnknownTopic is returned by Select for a name that matches no group or
// demo.
var ErrUnknownTopic = errors.New("unknown topic")

// All returns every group. Each call builds fresh values.
func All() []runner.Group {
	return []runner.Group{
		bindings.Group(),
		conversion.Group(),
		customtypes.Group(),
		expressions.Group(),
	}
}

// Select resolves topics to groups, keeping the order of topics. A topic is
// either a group name or "group/demo". No topics selects everything.
func Select(topics []string) ([]runner.Group, error) {
	all := All()
	if len(topics) == 0 {
		return all, nil
	}

	byName := make(map[string]runner.Group, len(all))
	for _, g := range all {
		byName[g.Name] = g
	}

	selected := make([]runner.Group, 0, len(topics))
	for _, topic := range topics {
		groupName, demoName, hasDemo := strings.Cut(topic, "/")

		g, ok := byName[groupName]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
		}
		if !hasDemo {
			selected = append(selected, g)
			continue
		}

		d, ok := find(g, demoName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
		}
		selected = append(selected, runner.Group{Name: g.Name, Demos: []runner.Demo{d}})
	}
	return selected, nil
}

func find(g runner.Group, name string) (runner.Demo, bool) {
	for _, d := range g.Demos {
		if d.Name == name {
			return d, true
		}
	}
	return runner.Demo{}, false
}
