package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labEps = 1e-6

func TestParseHex(t *testing.T) {
	testCases := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"FF5733", RGB{255, 87, 51}, true},
		{"#ff5733", RGB{255, 87, 51}, true},
		{"  #Ff5733\n", RGB{255, 87, 51}, true},
		{"000000", RGB{}, true},
		{"#FFFFFF", RGB{255, 255, 255}, true},
		{"12345", RGB{}, false},
		{"1234567", RGB{}, false},
		{"GGGGGG", RGB{}, false},
		{"##FF5733", RGB{}, false},
		{"+12345", RGB{}, false},
		{"12 345", RGB{}, false},
		{"", RGB{}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseHex(tc.in)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "FF5733", RGB{255, 87, 51}.Hex())
	assert.Equal(t, "000A0B", RGB{0, 10, 11}.Hex())
	assert.Equal(t, "#FF5733", RGB{255, 87, 51}.String())

	for _, c := range []RGB{{}, {1, 2, 3}, {255, 255, 255}, {171, 205, 239}} {
		got, ok := ParseHex(c.Hex())
		require.True(t, ok)
		require.Equal(t, c, got)
	}
}

func TestToLinear(t *testing.T) {
	assert.Equal(t, 0.0, ToLinear(0))
	assert.InDelta(t, 1.0, ToLinear(255), 1e-12)
	// 10/255 is below the companding threshold
	assert.InDelta(t, 10.0/255/12.92, ToLinear(10), 1e-15)
	for c := 1; c < 256; c++ {
		require.Greater(t, ToLinear(uint8(c)), ToLinear(uint8(c-1)))
	}
}

var labCases = []struct {
	name    string
	rgb     RGB
	X, Y, Z float64
	L, A, B float64
}{
	{"orange", RGB{255, 87, 51},
		45.250941353691, 28.322158096481, 6.215338296453,
		60.178678899764, 62.064538272437, 54.335309469797},
	{"black", RGB{0, 0, 0}, 0, 0, 0, 0, 0, 0},
	{"white", RGB{255, 255, 255},
		95.047, 100.00001, 108.883,
		100.000003866667, -0.000016666666, 0.000006666666},
	{"gray", RGB{128, 128, 128},
		20.516892954326, 21.586052169995, 23.503538833902,
		53.585015771669, -0.000009997846, 0.000003999139},
	{"near black", RGB{1, 1, 1},
		0.028849329205, 0.030352701390, 0.033048928550,
		0.274175951657, -0.000000118179, 0.000000047272},
	{"red", RGB{255, 0, 0},
		41.24564, 21.26729, 1.93339,
		53.240794141307, 80.092459596411, 67.203196515853},
}

func TestRGB2Lab(t *testing.T) {
	for _, tc := range labCases {
		t.Run(tc.name, func(t *testing.T) {
			xyz := RGB2Xyz(tc.rgb)
			assert.InDelta(t, tc.X, xyz.X, labEps)
			assert.InDelta(t, tc.Y, xyz.Y, labEps)
			assert.InDelta(t, tc.Z, xyz.Z, labEps)

			lab := RGB2Lab(tc.rgb)
			assert.InDelta(t, tc.L, lab.L, labEps)
			assert.InDelta(t, tc.A, lab.A, labEps)
			assert.InDelta(t, tc.B, lab.B, labEps)
			require.Equal(t, lab, Xyz2Lab(xyz))
		})
	}
}

func TestRGB2LabDeterministic(t *testing.T) {
	c := RGB{255, 87, 51}
	require.Equal(t, RGB2Lab(c), RGB2Lab(c))
}
