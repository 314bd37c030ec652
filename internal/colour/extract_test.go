package colour

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"
)

// solidImage builds an image where each pixel colour comes from the given
// function of its coordinates.
func solidImage(w, h int, at func(x, y int) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, at(x, y))
		}
	}
	return img
}

func gradientImage(w, h int) *image.RGBA {
	return solidImage(w, h, func(x, y int) color.RGBA {
		return color.RGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8((x + y) * 3), A: 255}
	})
}

func TestExtractColoursTwoToneImage(t *testing.T) {
	// Three black pixels and one white pixel. The nearest-neighbour resample
	// preserves exactly these two colours, black more frequent than white.
	img := solidImage(2, 2, func(x, y int) color.RGBA {
		if x == 1 && y == 1 {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{A: 255}
	})

	for _, method := range []Method{MethodKMeans, MethodMedianCut, MethodSimple} {
		t.Run(string(method), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Method = method
			cfg.Count = 2

			colours, err := ExtractColours(context.Background(), img, cfg)
			if err != nil {
				t.Fatalf("ExtractColours failed: %v", err)
			}
			if len(colours) != 2 {
				t.Fatalf("got %d colours, want 2: %v", len(colours), colours)
			}
			if colours[0] != "#000000" || colours[1] != "#ffffff" {
				t.Errorf("got %v, want [#000000 #ffffff]", colours)
			}
		})
	}
}

func TestExtractColoursEndToEndMapping(t *testing.T) {
	img := solidImage(2, 2, func(x, y int) color.RGBA {
		if x == 0 && y == 0 {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{A: 255}
	})

	colours, err := ExtractColours(context.Background(), img, DefaultConfig())
	if err != nil {
		t.Fatalf("ExtractColours failed: %v", err)
	}

	palette := ValidatePalette(MapRoles(colours))
	if got := palette[RoleBackground]; got != "#000000" {
		t.Errorf("background = %s, want #000000", got)
	}
	if got := palette[RoleForeground]; got != "#ffffff" {
		t.Errorf("foreground = %s, want #ffffff", got)
	}
}

func TestExtractColoursMedianCutBanding(t *testing.T) {
	// Four grey levels at equal frequency. With count 2 the method walks the
	// brightness-sorted distinct colours in steps of two, so it keeps the
	// darkest and the middle grey and skips the adjacent shades.
	greys := []color.RGBA{
		{A: 255},
		{R: 0x40, G: 0x40, B: 0x40, A: 255},
		{R: 0x80, G: 0x80, B: 0x80, A: 255},
		{R: 0xc0, G: 0xc0, B: 0xc0, A: 255},
	}
	img := solidImage(2, 2, func(x, y int) color.RGBA {
		return greys[y*2+x]
	})

	cfg := DefaultConfig()
	cfg.Method = MethodMedianCut
	cfg.Count = 2

	colours, err := ExtractColours(context.Background(), img, cfg)
	if err != nil {
		t.Fatalf("ExtractColours failed: %v", err)
	}
	want := []string{"#000000", "#808080"}
	if len(colours) != 2 || colours[0] != want[0] || colours[1] != want[1] {
		t.Errorf("got %v, want %v", colours, want)
	}
}

func TestExtractColoursDeterministic(t *testing.T) {
	img := gradientImage(64, 64)

	for _, method := range []Method{MethodKMeans, MethodMedianCut, MethodDominant, MethodSimple} {
		t.Run(string(method), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Method = method

			first, err := ExtractColours(context.Background(), img, cfg)
			if err != nil {
				t.Fatalf("first extraction failed: %v", err)
			}
			second, err := ExtractColours(context.Background(), img, cfg)
			if err != nil {
				t.Fatalf("second extraction failed: %v", err)
			}

			if len(first) != len(second) {
				t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
			}
			for i := range first {
				if first[i] != second[i] {
					t.Fatalf("runs diverge at %d: %s vs %s", i, first[i], second[i])
				}
			}
		})
	}
}

func TestExtractColoursRespectsCount(t *testing.T) {
	img := gradientImage(64, 64)

	for _, count := range []int{1, 4, 16} {
		cfg := DefaultConfig()
		cfg.Count = count
		colours, err := ExtractColours(context.Background(), img, cfg)
		if err != nil {
			t.Fatalf("count %d: %v", count, err)
		}
		if len(colours) > count {
			t.Errorf("count %d: got %d colours", count, len(colours))
		}
	}
}

func TestExtractColoursTimeout(t *testing.T) {
	img := gradientImage(64, 64)

	cfg := DefaultConfig()
	cfg.Timeout = time.Nanosecond

	_, err := ExtractColours(context.Background(), img, cfg)
	if !errors.Is(err, ErrNoColours) {
		t.Errorf("expected ErrNoColours on timeout, got %v", err)
	}
}

func TestExtractColoursConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "unknown method", cfg: Config{Method: "octree", Count: 16}},
		{name: "zero count", cfg: Config{Method: MethodKMeans, Count: 0}},
		{name: "count too big", cfg: Config{Method: MethodKMeans, Count: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
			if _, err := ExtractColours(context.Background(), gradientImage(8, 8), tt.cfg); err == nil {
				t.Error("expected extraction to reject config")
			}
		})
	}
}

func TestExtractColoursNilImage(t *testing.T) {
	if _, err := ExtractColours(context.Background(), nil, DefaultConfig()); err == nil {
		t.Error("expected error for nil image")
	}
}
