// Package validation holds value checks shared by configuration layers.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value looks like #RRGGBB.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidatePaletteHex checks every named color and returns one message
// per invalid entry, keyed as prefix.name. Names are checked in the
// order given.
func ValidatePaletteHex(prefix string, names []string, colors map[string]string) []string {
	var errs []string
	for _, name := range names {
		if !IsHexColor(colors[name]) {
			errs = append(errs, prefix+"."+name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
