package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// D65 reference white, Y scaled to 100.
const (
	whiteX = 95.047
	whiteY = 100.000
	whiteZ = 108.883
)

const (
	epsilon = 0.008856 // (6/29)^3
	kappa   = 903.3    // (29/3)^3
)

// RGB is an 8-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

// XYZ is a CIE 1931 color relative to D65, luminance in 0-100.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIELab color relative to D65.
type Lab struct {
	L, A, B float64
}

// ParseHex parses "RRGGBB" or "#RRGGBB", ignoring surrounding whitespace.
// ok is false for anything that isn't exactly six hex digits.
func ParseHex(s string) (c RGB, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	v, e := strconv.ParseUint(s, 16, 32)
	if e != nil {
		return RGB{}, false
	}
	return RGB{byte(v >> 16), byte(v >> 8), byte(v)}, true
}

// Hex returns the color as six uppercase hex digits with no prefix.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return "#" + c.Hex()
}

// ToLinear undoes sRGB companding for a single channel. The result is in [0,1].
func ToLinear(c uint8) float64 {
	v := float64(c) / 255
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RGB2Xyz converts an sRGB color to XYZ (D65).
func RGB2Xyz(c RGB) XYZ {
	r := ToLinear(c.R) * 100
	g := ToLinear(c.G) * 100
	b := ToLinear(c.B) * 100

	return XYZ{
		X: 0.4124564*r + 0.3575761*g + 0.1804375*b,
		Y: 0.2126729*r + 0.7151522*g + 0.0721750*b,
		Z: 0.0193339*r + 0.1191920*g + 0.9503041*b,
	}
}

// Xyz2Lab converts an XYZ (D65) color to CIELab.
func Xyz2Lab(c XYZ) Lab {
	fx := labF(c.X / whiteX)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// RGB2Lab converts an sRGB color to its Lab equivalent.
func RGB2Lab(c RGB) Lab {
	return Xyz2Lab(RGB2Xyz(c))
}

func labF(t float64) float64 {
	if t > epsilon {
		return math.Cbrt(t)
	}
	return (kappa*t + 16) / 116
}
