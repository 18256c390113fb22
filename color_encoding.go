package vmath

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidHex is returned when a string is not a valid hex color.
var ErrInvalidHex = errors.New("vmath: invalid hex color")

// ParseHex parses a hex color. Supported forms, with an optional leading
// '#', are "RGB", "RGBA", "RRGGBB" and "RRGGBBAA". Forms without alpha
// are opaque.
func ParseHex(s string) (Color, error) {
	h := s
	if h != "" && h[0] == '#' {
		h = h[1:]
	}

	var digits [8]uint8
	if len(h) > len(digits) {
		return Color{}, hexError(s)
	}
	for i := 0; i < len(h); i++ {
		d, ok := hexDigit(h[i])
		if !ok {
			return Color{}, hexError(s)
		}
		digits[i] = d
	}

	switch len(h) {
	case 3:
		return Color{digits[0] * 17, digits[1] * 17, digits[2] * 17, 255}, nil
	case 4:
		return Color{digits[0] * 17, digits[1] * 17, digits[2] * 17, digits[3] * 17}, nil
	case 6:
		return Color{
			digits[0]<<4 | digits[1],
			digits[2]<<4 | digits[3],
			digits[4]<<4 | digits[5],
			255,
		}, nil
	case 8:
		return Color{
			digits[0]<<4 | digits[1],
			digits[2]<<4 | digits[3],
			digits[4]<<4 | digits[5],
			digits[6]<<4 | digits[7],
		}, nil
	default:
		return Color{}, hexError(s)
	}
}

// MustParseHex is like ParseHex but panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexError(s string) error {
	Logger().Debug("vmath: rejected hex color", "input", s)
	return fmt.Errorf("%w: %q", ErrInvalidHex, s)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex returns c as "#rrggbbaa".
func (c Color) Hex() string {
	return "#" + c.String()
}

// MarshalText implements encoding.TextMarshaler using the "#rrggbbaa" form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts any form
// supported by ParseHex.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON encodes c as its packed 0xRRGGBBAA value.
func (c Color) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(c.Packed()), 10), nil
}

// UnmarshalJSON accepts either a packed number or a hex string. JSON null
// leaves c unchanged.
func (c *Color) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("vmath: decode color: %w", err)
		}
		return c.UnmarshalText([]byte(s))
	}
	v, err := strconv.ParseUint(string(data), 10, 32)
	if err != nil {
		return fmt.Errorf("vmath: decode color: %w", err)
	}
	*c = FromPacked(uint32(v))
	return nil
}

// MarshalYAML encodes c as a "#rrggbbaa" string.
func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// UnmarshalYAML accepts either a packed integer or a hex string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("vmath: decode color: line %d: expected scalar", value.Line)
	}
	if value.ShortTag() == "!!int" {
		var v uint32
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("vmath: decode color: line %d: %w", value.Line, err)
		}
		*c = FromPacked(v)
		return nil
	}
	return c.UnmarshalText([]byte(value.Value))
}
