package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	orange = RGB{255, 87, 51}
	gray   = RGB{128, 128, 128}
)

func TestIdentityIsZero(t *testing.T) {
	for _, c := range []RGB{orange, gray, {}, {255, 255, 255}, {12, 200, 99}} {
		lab := RGB2Lab(c)
		assert.Equal(t, 0.0, CIE76(lab, lab))
		assert.Equal(t, 0.0, CIE94(lab, lab, false))
		assert.Equal(t, 0.0, CIE94(lab, lab, true))
		assert.Equal(t, 0.0, RGBDistance(c, c))
		assert.InDelta(t, 0.0, CIEDE2000(lab, lab), 1e-9)
	}
}

func TestCIE76Symmetric(t *testing.T) {
	a, b := RGB2Lab(orange), RGB2Lab(gray)
	assert.Equal(t, CIE76(a, b), CIE76(b, a))
	assert.InDelta(t, 82.751495249518, CIE76(a, b), labEps)
}

func TestCIE94Asymmetric(t *testing.T) {
	a, b := RGB2Lab(orange), RGB2Lab(gray)

	testCases := []struct {
		name    string
		textile bool
		ab, ba  float64
	}{
		{"graphic arts", false, 18.706700565299, 82.751455406026},
		{"textile", true, 16.956199544599, 82.554198179841},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ab := CIE94(a, b, tc.textile)
			ba := CIE94(b, a, tc.textile)
			assert.InDelta(t, tc.ab, ab, labEps)
			assert.InDelta(t, tc.ba, ba, labEps)
			assert.NotEqual(t, ab, ba)
		})
	}
}

func TestCIE94LightnessOnly(t *testing.T) {
	// lightness only, no chroma or hue difference
	a := Lab{50, 30, 40}
	b := Lab{60, 30, 40}
	assert.InDelta(t, 10.0, CIE94(a, b, false), 1e-12)
	assert.InDelta(t, 5.0, CIE94(a, b, true), 1e-12)
}

func TestRGBDistance(t *testing.T) {
	assert.Equal(t, 5.0, RGBDistance(RGB{0, 0, 0}, RGB{3, 4, 0}))
	assert.Equal(t, RGBDistance(orange, gray), RGBDistance(gray, orange))
	assert.InDelta(t, 441.6729559300637, RGBDistance(RGB{}, RGB{255, 255, 255}), 1e-9)
}

func TestDistance(t *testing.T) {
	th := NewThread("g", "gray", gray)
	lab := RGB2Lab(orange)

	assert.Equal(t, CIE76(lab, th.Lab), Distance(orange, th, MethodCIE76))
	assert.Equal(t, CIE94(lab, th.Lab, false), Distance(orange, th, MethodCIE94))
	assert.Equal(t, CIE94(lab, th.Lab, true), Distance(orange, th, MethodCIE94Textile))
	assert.Equal(t, CIEDE2000(lab, th.Lab), Distance(orange, th, MethodCIEDE2000))
	assert.Equal(t, RGBDistance(orange, gray), Distance(orange, th, MethodRGB))

	var zero Method
	assert.Equal(t, MethodCIE76, zero)
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{MethodCIE76, MethodCIE94, MethodCIE94Textile, MethodRGB, MethodCIEDE2000} {
		got, e := ParseMethod(m.String())
		require.NoError(t, e)
		require.Equal(t, m, got)
	}
	got, e := ParseMethod(" CIE94 ")
	require.NoError(t, e)
	assert.Equal(t, MethodCIE94, got)

	_, e = ParseMethod("cie2001")
	assert.Error(t, e)
	assert.Equal(t, "Method(42)", Method(42).String())
}
