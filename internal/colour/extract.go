package colour

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"
	"time"

	xdraw "golang.org/x/image/draw"
)

// ErrNoColours is returned when an image decodes but yields no usable
// colours. Callers treat it as "no palette produced", not a fault.
var ErrNoColours = errors.New("no colours extracted from image")

// Method selects the colour extraction algorithm.
type Method string

const (
	// MethodKMeans clusters pixels by Euclidean RGB distance. Default.
	MethodKMeans Method = "kmeans"

	// MethodMedianCut picks colours evenly spaced across the brightness
	// range of the distinct pixel colours.
	MethodMedianCut Method = "median_cut"

	// MethodDominant picks dominant colours via histogram analysis.
	MethodDominant Method = "dominant"

	// MethodSimple samples pixels at random and keeps the unique colours.
	MethodSimple Method = "simple"
)

// ValidMethods returns the supported extraction methods.
func ValidMethods() []Method {
	return []Method{MethodKMeans, MethodMedianCut, MethodDominant, MethodSimple}
}

// IsValidMethod checks whether the given method name is supported.
func IsValidMethod(m Method) bool {
	for _, valid := range ValidMethods() {
		if m == valid {
			return true
		}
	}
	return false
}

// workingSize is the fixed resolution images are resampled to before any
// clustering. The resize bounds extraction cost regardless of source image
// size; extraction results are defined on the resized pixel set.
const workingSize = 150

// Config holds configuration for colour extraction.
type Config struct {
	// Method is the extraction algorithm.
	Method Method

	// Count is the number of candidate colours to produce (1-256).
	Count int

	// Seed fixes the RNG used for centroid initialisation and sampling so
	// extraction is repeatable for the same image and count.
	Seed int64

	// Timeout bounds the clustering work. Zero means DefaultTimeout.
	Timeout time.Duration
}

const (
	// DefaultTimeout is the clustering safety margin. Cluster count and the
	// resized pixel set are both small, so hitting it indicates a stuck run.
	DefaultTimeout = 10 * time.Second

	// DefaultColourCount is the candidate list size used when unconfigured.
	DefaultColourCount = 16

	// DefaultSeed is the fixed RNG seed for repeatable extraction.
	DefaultSeed = 42
)

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		Method:  MethodKMeans,
		Count:   DefaultColourCount,
		Seed:    DefaultSeed,
		Timeout: DefaultTimeout,
	}
}

// Validate checks the extraction configuration.
func (c Config) Validate() error {
	if !IsValidMethod(c.Method) {
		return fmt.Errorf("unknown extraction method: %q (valid methods: %v)", c.Method, ValidMethods())
	}
	if c.Count < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.Count)
	}
	if c.Count > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", c.Count)
	}
	return nil
}

// ExtractColours reduces an image to up to Count representative hex colours,
// ranked most-representative first. The image is resampled to the fixed
// working resolution, candidates are produced by the configured method, and
// the result is ordered by exact-pixel frequency in the resized buffer
// (candidates never seen verbatim rank last).
//
// Returns ErrNoColours when nothing usable comes out of the image.
func ExtractColours(ctx context.Context, img image.Image, cfg Config) ([]string, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	working := resample(img)
	pixels := flatten(working)
	if len(pixels) == 0 {
		return nil, ErrNoColours
	}

	var (
		candidates []RGB
		err        error
	)
	switch cfg.Method {
	case MethodKMeans:
		candidates, err = extractKMeans(ctx, pixels, cfg.Count, cfg.Seed)
	case MethodMedianCut:
		candidates, err = extractMedianCut(pixels, cfg.Count)
	case MethodDominant:
		candidates, err = extractDominant(working, cfg.Count)
	case MethodSimple:
		candidates, err = extractSimple(pixels, cfg.Count, cfg.Seed)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: clustering timed out after %s", ErrNoColours, timeout)
		}
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoColours
	}

	ranked := rankByFrequency(candidates, pixels)
	if len(ranked) > cfg.Count {
		ranked = ranked[:cfg.Count]
	}

	hexes := make([]string, len(ranked))
	for i, c := range ranked {
		hexes[i] = c.Hex()
	}
	return hexes, nil
}

// resample scales the image down (or up) to the fixed working resolution.
func resample(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == workingSize && bounds.Dy() == workingSize {
		return img
	}

	// NearestNeighbor keeps the pixel population a pure resample of the
	// source colours; interpolating filters would invent blended colours
	// that were never in the image.
	dst := image.NewRGBA(image.Rect(0, 0, workingSize, workingSize))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

// flatten converts an image to a flat list of RGB pixels.
func flatten(img image.Image) []RGB {
	bounds := img.Bounds()
	pixels := make([]RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	return pixels
}

// rankByFrequency orders candidates by how often their exact colour occurs in
// the pixel set, descending. The sort is stable so candidates with equal (or
// zero) counts keep the order their method produced.
func rankByFrequency(candidates []RGB, pixels []RGB) []RGB {
	counts := make(map[RGB]int, len(pixels)/4)
	for _, p := range pixels {
		counts[p]++
	}

	ranked := make([]RGB, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}

// uniqueColours returns the distinct colours in pixels, keeping first-seen order.
func uniqueColours(pixels []RGB) []RGB {
	seen := make(map[RGB]bool, len(pixels))
	unique := make([]RGB, 0, 64)
	for _, p := range pixels {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}
	return unique
}
