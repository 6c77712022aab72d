package presets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// NormalizeHex validates a "#RRGGBB" or "RRGGBB" color and returns it as
// six uppercase hex digits without the leading '#'.
func NormalizeHex(hex string) (string, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "", fmt.Errorf("invalid hex color length: %s", hex)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return "", fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return strings.ToUpper(hex), nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex, err := NormalizeHex(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}

	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
