package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

var Black = RGB{}

func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ParseHex parses "#RRGGBB" (the leading # is optional).
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return RGB{
		R: int(v>>16) & 0xff,
		G: int(v>>8) & 0xff,
		B: int(v) & 0xff,
	}, nil
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", Clamp(c.R), Clamp(c.G), Clamp(c.B))
}

// Scale returns round(channel * factor * brightness / 255) for each channel.
// factor is the fade progress (1 for full colour).
func Scale(c RGB, factor float64, brightness int) RGB {
	scale := func(ch int) int {
		return Clamp(int(math.Round(float64(ch) * factor * float64(brightness) / 255)))
	}
	return RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// Lerp moves each channel of from towards to by t (0..1), unrounded.
func Lerp(from, to RGB, t float64) (float64, float64, float64) {
	lerp := func(a, b int) float64 {
		return float64(a) + t*float64(b-a)
	}
	return lerp(from.R, to.R), lerp(from.G, to.G), lerp(from.B, to.B)
}

// FromFloats rounds each channel to the nearest integer and clamps it.
func FromFloats(r, g, b float64) RGB {
	return RGB{
		R: Clamp(int(math.Round(r))),
		G: Clamp(int(math.Round(g))),
		B: Clamp(int(math.Round(b))),
	}
}
