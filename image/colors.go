package image

import (
	"fmt"
	"image"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mmuldo/threadmatch/palette"
)

// ColorCount is a color and the number of pixels it covers.
type ColorCount struct {
	Color palette.RGB
	Count int
}

// ColorCountList sorts by count, most common first, then by hex.
type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Colors returns just the colors, in list order.
func (ccl ColorCountList) Colors() []palette.RGB {
	out := make([]palette.RGB, len(ccl))
	for i, cc := range ccl {
		out[i] = cc.Color
	}
	return out
}

// Quantize reduces img to at most num colors.
func Quantize(img image.Image, num int) (image.Image, error) {
	if num < 1 {
		return nil, fmt.Errorf("cannot quantize to %d colors", num)
	}
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)
	return o, nil
}

// GetColors maps each opaque color in img to the number of pixels it covers.
// Fully transparent pixels are skipped.
func GetColors(img image.Image) map[palette.RGB]int {
	m := make(map[palette.RGB]int)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			cf, _ := colorful.MakeColor(c)
			r, g, bl := cf.RGB255()
			m[palette.RGB{R: r, G: g, B: bl}]++
		}
	}

	return m
}

// RankColors turns a color count map into a sorted list.
func RankColors(m map[palette.RGB]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}
