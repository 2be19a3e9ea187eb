package entity

import (
	"fmt"
	"strings"
	"time"
)

// EventKind is what happens to a tooltip's host at a point in time.
type EventKind string

const (
	EventEnter    EventKind = "enter"
	EventLeave    EventKind = "leave"
	EventTeardown EventKind = "teardown"
)

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	switch k {
	case EventEnter, EventLeave, EventTeardown:
		return true
	}
	return false
}

// Size is the measured size of a tooltip bubble.
type Size struct {
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// ScenarioTooltip declares one host element and its tooltip. Unset
// delays and offset fall back to the tooltip defaults.
type ScenarioTooltip struct {
	Name        string   `toml:"name" json:"name"`
	Text        string   `toml:"text" json:"text"`
	Placement   string   `toml:"placement" json:"placement,omitempty"`
	ShowDelayMs *int64   `toml:"show_delay_ms" json:"show_delay_ms,omitempty"`
	HideDelayMs *int64   `toml:"hide_delay_ms" json:"hide_delay_ms,omitempty"`
	Offset      *float64 `toml:"offset" json:"offset,omitempty"`
	Host        Rect     `toml:"host" json:"host"`
	Size        Size     `toml:"size" json:"size"`
}

// Side returns the parsed placement, or the default side for an invalid one.
func (t ScenarioTooltip) Side() Side {
	s, err := ParseSide(t.Placement)
	if err != nil {
		return DefaultSide
	}
	return s
}

// ScenarioEvent is one scripted pointer or lifecycle event.
type ScenarioEvent struct {
	AtMs    int64     `toml:"at_ms" json:"at_ms"`
	Tooltip string    `toml:"tooltip" json:"tooltip"`
	Kind    EventKind `toml:"kind" json:"kind"`
}

// At returns the event time as a duration since the start.
func (e ScenarioEvent) At() time.Duration {
	return time.Duration(e.AtMs) * time.Millisecond
}

// Scenario is a scripted hover session over a fixed page.
type Scenario struct {
	Name     string            `toml:"name" json:"name"`
	Viewport Viewport          `toml:"viewport" json:"viewport"`
	Tooltips []ScenarioTooltip `toml:"tooltips" json:"tooltips"`
	Events   []ScenarioEvent   `toml:"events" json:"events"`
}

// Validate reports every problem in one error.
func (s *Scenario) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if s.Viewport.Width < 0 || s.Viewport.Height < 0 || s.Viewport.ScrollTop < 0 {
		add("viewport dimensions and scroll_top must be non-negative")
	}
	if len(s.Tooltips) == 0 {
		add("at least one [[tooltips]] entry is required")
	}

	names := make(map[string]bool, len(s.Tooltips))
	for i, t := range s.Tooltips {
		where := fmt.Sprintf("tooltips[%d]", i)
		if t.Name == "" {
			add("%s: name is required", where)
		} else if names[t.Name] {
			add("%s: duplicate name %q", where, t.Name)
		} else {
			names[t.Name] = true
		}

		if _, err := ParseSide(t.Placement); err != nil {
			add("%s: %v", where, err)
		}
		if t.ShowDelayMs != nil && *t.ShowDelayMs < 0 {
			add("%s: show_delay_ms must be non-negative", where)
		}
		if t.HideDelayMs != nil && *t.HideDelayMs < 0 {
			add("%s: hide_delay_ms must be non-negative", where)
		}
		if t.Offset != nil && *t.Offset < 0 {
			add("%s: offset must be non-negative", where)
		}
		if t.Size.Width < 0 || t.Size.Height < 0 {
			add("%s: size must be non-negative", where)
		}
	}

	var last int64
	for i, e := range s.Events {
		where := fmt.Sprintf("events[%d]", i)
		if e.AtMs < 0 {
			add("%s: at_ms must be non-negative", where)
		}
		if e.AtMs < last {
			add("%s: at_ms %d is before the previous event (%d); events must be sorted", where, e.AtMs, last)
		}
		last = max(last, e.AtMs)
		if !names[e.Tooltip] {
			add("%s: unknown tooltip %q", where, e.Tooltip)
		}
		if !e.Kind.Valid() {
			add("%s: kind must be one of: enter, leave, teardown (got %q)", where, e.Kind)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid scenario %q:\n  - %s", s.Name, strings.Join(problems, "\n  - "))
	}
	return nil
}

// End returns the time of the last event.
func (s *Scenario) End() time.Duration {
	if len(s.Events) == 0 {
		return 0
	}
	return s.Events[len(s.Events)-1].At()
}
