// Package scenario reads scripted hover sessions from TOML files.
//
//	[viewport]
//	width = 1024
//	height = 768
//
//	[[tooltips]]
//	name = "save"
//	text = "Save the document"
//	host = { top = 100, left = 40, width = 60, height = 24 }
//	size = { width = 120, height = 28 }
//
//	[[events]]
//	at_ms = 0
//	tooltip = "save"
//	kind = "enter"
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/dumbtip/internal/domain/entity"
)

// Load parses the file at path. The scenario name defaults to the file
// name without extension.
func Load(path string) (*entity.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sc, err := Parse(data, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(data []byte, defaultName string) (*entity.Scenario, error) {
	var sc entity.Scenario
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parse scenario at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.Name == "" {
		sc.Name = defaultName
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}
