// Package gizmo describes the mode state of a transform gizmo and builds
// the wireframe geometry of its handles.
package gizmo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode is a set of transform operations supported by a gizmo. Modes compose with bitwise OR.
type Mode uint8

const (
	ModeTranslate Mode = 1 << iota
	ModeRotate
	ModeScale
	// ModeAll enables every transform mode.
	ModeAll Mode = 0xf
)

var modeNames = [...]struct {
	m    Mode
	name string
}{
	{ModeTranslate, "translate"},
	{ModeRotate, "rotate"},
	{ModeScale, "scale"},
}

// Has reports whether every mode in flag is set in m.
func (m Mode) Has(flag Mode) bool { return m&flag == flag }

func (m Mode) String() string {
	if m == ModeAll {
		return "all"
	} else if m == 0 {
		return "none"
	}
	var b strings.Builder
	rest := m
	for _, mn := range modeNames {
		if m&mn.m == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(mn.name)
		rest &^= mn.m
	}
	if rest != 0 {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%#x", uint8(rest))
	}
	return b.String()
}

// MarshalText encodes m as its String form. Bits outside ModeAll are an error.
func (m Mode) MarshalText() ([]byte, error) {
	if m&^ModeAll != 0 {
		return nil, fmt.Errorf("invalid gizmo mode %#x", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText parses a "|" separated list of mode names such as "translate|rotate", or "all".
// Unnamed bits within ModeAll are accepted in hexadecimal form, e.g. "translate|0x8".
func (m *Mode) UnmarshalText(text []byte) error {
	var result Mode
	for _, field := range strings.Split(string(text), "|") {
		field = strings.TrimSpace(strings.ToLower(field))
		switch field {
		case "all":
			result |= ModeAll
			continue
		case "none", "":
			continue
		}
		found := false
		for _, mn := range modeNames {
			if mn.name == field {
				result |= mn.m
				found = true
				break
			}
		}
		if !found && strings.HasPrefix(field, "0x") {
			v, err := strconv.ParseUint(field, 0, 8)
			if err == nil && Mode(v)&^ModeAll == 0 {
				result |= Mode(v)
				found = true
			}
		}
		if !found {
			return fmt.Errorf("unknown gizmo mode %q", field)
		}
	}
	*m = result
	return nil
}

// Anchor selects where the gizmo of a selection is placed.
type Anchor uint8

const (
	// AnchorPivot places the gizmo at the selection's pivot point.
	AnchorPivot Anchor = iota
	// AnchorCenter places the gizmo at the center of the selection's rendered bounds.
	AnchorCenter
)

func (a Anchor) String() string {
	switch a {
	case AnchorPivot:
		return "pivot"
	case AnchorCenter:
		return "center"
	}
	return fmt.Sprintf("Anchor(%d)", uint8(a))
}

// MarshalText encodes a as "pivot" or "center".
func (a Anchor) MarshalText() ([]byte, error) {
	if a > AnchorCenter {
		return nil, errors.New("invalid gizmo anchor")
	}
	return []byte(a.String()), nil
}

// UnmarshalText parses "pivot" or "center", ignoring case.
func (a *Anchor) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "pivot":
		*a = AnchorPivot
	case "center":
		*a = AnchorCenter
	default:
		return fmt.Errorf("unknown gizmo anchor %q", text)
	}
	return nil
}

// Coordinate selects the orientation of the gizmo axes.
type Coordinate uint8

const (
	// CoordinateLocal aligns the axes to the selection's local space.
	CoordinateLocal Coordinate = iota
	// CoordinateGlobal aligns the axes to world space.
	CoordinateGlobal
)

func (c Coordinate) String() string {
	switch c {
	case CoordinateLocal:
		return "local"
	case CoordinateGlobal:
		return "global"
	}
	return fmt.Sprintf("Coordinate(%d)", uint8(c))
}

// MarshalText encodes c as "local" or "global".
func (c Coordinate) MarshalText() ([]byte, error) {
	if c > CoordinateGlobal {
		return nil, errors.New("invalid gizmo coordinate")
	}
	return []byte(c.String()), nil
}

// UnmarshalText parses "local", "global" or its alias "world", ignoring case.
func (c *Coordinate) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "local":
		*c = CoordinateLocal
	case "global", "world":
		*c = CoordinateGlobal
	default:
		return fmt.Errorf("unknown gizmo coordinate %q", text)
	}
	return nil
}

// Config is the mode state of a gizmo.
type Config struct {
	Mode       Mode       `toml:"mode"`
	Anchor     Anchor     `toml:"anchor"`
	Coordinate Coordinate `toml:"coordinate"`
}

// DefaultConfig returns a translate gizmo anchored at the pivot in local space.
func DefaultConfig() Config {
	return Config{Mode: ModeTranslate, Anchor: AnchorPivot, Coordinate: CoordinateLocal}
}
