package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmuldo/threadmatch/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRect(img *image.NRGBA, rect image.Rectangle, fill color.NRGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
}

// quarters is 8x8: a red half, a blue quarter and a transparent quarter.
func quarters() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	fillRect(img, image.Rect(0, 0, 8, 4), color.NRGBA{R: 200, G: 10, B: 20, A: 255})
	fillRect(img, image.Rect(0, 4, 4, 8), color.NRGBA{R: 10, G: 20, B: 200, A: 255})
	return img
}

func TestGetColors(t *testing.T) {
	m := GetColors(quarters())
	assert.Equal(t, map[palette.RGB]int{
		{R: 200, G: 10, B: 20}: 32,
		{R: 10, G: 20, B: 200}: 16,
	}, m)
}

func TestGetColorsOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(-2, -2, 2, 2))
	fillRect(img, img.Bounds(), color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	assert.Equal(t, map[palette.RGB]int{{R: 1, G: 2, B: 3}: 16}, GetColors(img))
}

func TestRankColors(t *testing.T) {
	ranked := RankColors(map[palette.RGB]int{
		{R: 1}: 5,
		{R: 3}: 9,
		{R: 2}: 5,
	})
	assert.Equal(t, ColorCountList{
		{palette.RGB{R: 3}, 9},
		{palette.RGB{R: 1}, 5},
		{palette.RGB{R: 2}, 5},
	}, ranked)
	assert.Equal(t, []palette.RGB{{R: 3}, {R: 1}, {R: 2}}, ranked.Colors())
	assert.Empty(t, RankColors(nil))
}

func TestQuantize(t *testing.T) {
	img := quarters()
	fillRect(img, image.Rect(4, 4, 8, 8), color.NRGBA{R: 240, G: 240, B: 10, A: 255})
	for y := 0; y < 4; y++ {
		img.SetNRGBA(y, y, color.NRGBA{R: 201, G: 12, B: 22, A: 255})
	}

	q, e := Quantize(img, 3)
	require.NoError(t, e)
	assert.Equal(t, img.Bounds(), q.Bounds())
	assert.LessOrEqual(t, len(GetColors(q)), 3)

	_, e = Quantize(img, 0)
	assert.Error(t, e)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.png")
	f, e := os.Create(path)
	require.NoError(t, e)
	require.NoError(t, png.Encode(f, quarters()))
	require.NoError(t, f.Close())

	img, e := Load(path)
	require.NoError(t, e)
	assert.Equal(t, GetColors(quarters()), GetColors(img))

	_, e = Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, e)
}
