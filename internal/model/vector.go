package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is a position or displacement in scene space.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Unit directions. North is forward along Z, East is right along X.
var (
	North = Vector{Z: 1}
	South = Vector{Z: -1}
	East  = Vector{X: 1}
	West  = Vector{X: -1}
	Up    = Vector{Y: 1}
	Down  = Vector{Y: -1}
)

// directions maps accepted direction names to unit vectors.
var directions = map[string]Vector{
	"north": North, "n": North, "w": North, "forward": North, "arrowup": North,
	"south": South, "s": South, "back": South, "arrowdown": South,
	"east": East, "e": East, "d": East, "right": East, "arrowright": East,
	"west": West, "a": West, "left": West, "arrowleft": West,
	"up": Up, "u": Up,
	"down": Down,
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v * f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// String formats v as "(x, y, z)" without trailing zeros.
func (v Vector) String() string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}

// DirectionName returns the name of a unit direction, or the vector itself.
func DirectionName(v Vector) string {
	switch v {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return v.String()
	}
}

// ParseDirection resolves a direction name (north, w, arrowup, ...).
func ParseDirection(name string) (Vector, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "")
	key = strings.ReplaceAll(key, "-", "")
	v, ok := directions[key]
	return v, ok
}

func formatFloat(f float64) string {
	if f == 0 {
		// Avoid printing -0.
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
