package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

// Method selects the distance metric used when matching.
type Method int

const (
	MethodCIE76 Method = iota
	MethodCIE94
	MethodCIE94Textile
	MethodRGB
	MethodCIEDE2000
)

var methodNames = map[Method]string{
	MethodCIE76:        "cie76",
	MethodCIE94:        "cie94",
	MethodCIE94Textile: "cie94-textile",
	MethodRGB:          "rgb",
	MethodCIEDE2000:    "ciede2000",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod accepts the names returned by Method.String, case-insensitively.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return MethodCIE76, fmt.Errorf("unknown distance method %q", s)
}

var klch = &deltae.KLChDefault

// CIE76 is the Euclidean distance between two Lab colors.
func CIE76(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// CIE94 computes delta E 1994 using graphic arts weights, or textile weights
// when textile is set. Chroma weighting comes from the first argument only, so
// CIE94(a, b) and CIE94(b, a) generally differ.
func CIE94(a, b Lab, textile bool) float64 {
	kL, k1, k2 := 1.0, 0.045, 0.015
	if textile {
		kL, k1, k2 = 2.0, 0.048, 0.014
	}
	const kC, kH = 1.0, 1.0

	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)

	dl := a.L - b.L
	dc := c1 - c2
	da := a.A - b.A
	db := a.B - b.B

	// round-off can leave this slightly negative
	dh2 := da*da + db*db - dc*dc
	if dh2 < 0 {
		dh2 = 0
	}
	dh := math.Sqrt(dh2)

	sl := 1.0
	sc := 1 + k1*c1
	sh := 1 + k2*c1

	tl := dl / (kL * sl)
	tc := dc / (kC * sc)
	th := dh / (kH * sh)
	return math.Sqrt(tl*tl + tc*tc + th*th)
}

// CIEDE2000 computes delta E 2000 with unit kL, kC, kH weights.
func CIEDE2000(a, b Lab) float64 {
	return deltae.CIE2000(a.chromath(), b.chromath(), klch)
}

// RGBDistance is the Euclidean distance over raw 8-bit channels.
func RGBDistance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Distance returns the distance from c to the thread t under method m. The
// query color is always the first operand.
func Distance(c RGB, t Thread, m Method) float64 {
	return newQuery(c, m).distance(t, m)
}

// query holds a color in whichever space the chosen method compares in.
type query struct {
	rgb RGB
	lab Lab
}

func newQuery(c RGB, m Method) query {
	q := query{rgb: c}
	if m != MethodRGB {
		q.lab = RGB2Lab(c)
	}
	return q
}

func (q query) distance(t Thread, m Method) float64 {
	switch m {
	case MethodRGB:
		return RGBDistance(q.rgb, t.RGB)
	case MethodCIE94:
		return CIE94(q.lab, t.Lab, false)
	case MethodCIE94Textile:
		return CIE94(q.lab, t.Lab, true)
	case MethodCIEDE2000:
		return CIEDE2000(q.lab, t.Lab)
	default:
		return CIE76(q.lab, t.Lab)
	}
}

func (c Lab) chromath() chromath.Lab {
	return chromath.Lab{c.L, c.A, c.B}
}
