package colour

import (
	"image"
	"math/rand"
	"sort"

	"github.com/cenkalti/dominantcolor"
)

// extractDominant produces candidates via histogram-based dominant colour
// analysis. The algorithm has no random state, so it is deterministic for a
// fixed image without needing the seed.
func extractDominant(img image.Image, count int) ([]RGB, error) {
	found := dominantcolor.FindWeight(img, count)

	out := make([]RGB, 0, len(found))
	for _, c := range found {
		out = append(out, RGB{R: c.RGBA.R, G: c.RGBA.G, B: c.RGBA.B})
	}
	return out, nil
}

// extractMedianCut sorts the distinct colours by brightness and picks evenly
// spaced entries across the range, so the candidates span dark to light
// bands. Fully deterministic; the seed is unused.
func extractMedianCut(pixels []RGB, count int) ([]RGB, error) {
	unique := uniqueColours(pixels)
	if len(unique) <= count {
		return unique, nil
	}

	// Canonical ordering before the brightness sort keeps equal-luma colours
	// in a repeatable order regardless of pixel layout.
	sort.Slice(unique, func(i, j int) bool {
		a, b := unique[i], unique[j]
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].luma() < unique[j].luma()
	})

	step := len(unique) / count
	out := make([]RGB, 0, count)
	for i := 0; i < len(unique) && len(out) < count; i += step {
		out = append(out, unique[i])
	}
	return out, nil
}

// simpleSampleSize caps how many pixels the simple method inspects.
const simpleSampleSize = 1000

// extractSimple draws a seeded random sample of pixels and keeps the first
// count distinct colours found in it. Crude, but cheap and deterministic for
// a fixed input and seed.
func extractSimple(pixels []RGB, count int, seed int64) ([]RGB, error) {
	rng := rand.New(rand.NewSource(seed))

	n := len(pixels)
	sampleSize := min(simpleSampleSize, n)
	sample := make([]RGB, 0, sampleSize)
	for _, idx := range rng.Perm(n)[:sampleSize] {
		sample = append(sample, pixels[idx])
	}

	unique := uniqueColours(sample)
	if len(unique) > count {
		unique = unique[:count]
	}
	return unique, nil
}
