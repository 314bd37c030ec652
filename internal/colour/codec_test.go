package colour

import (
	"math"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGB
	}{
		{name: "six digit with hash", hex: "#1a2b3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{name: "six digit without hash", hex: "1a2b3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{name: "uppercase", hex: "#FFAA00", want: RGB{R: 0xff, G: 0xaa, B: 0x00}},
		{name: "three digit doubled", hex: "#abc", want: RGB{R: 0xaa, G: 0xbb, B: 0xcc}},
		{name: "surrounding whitespace", hex: "  #ff0000 ", want: RGB{R: 0xff}},
		{name: "white", hex: "#ffffff", want: RGB{R: 255, G: 255, B: 255}},
		{name: "empty decodes to black", hex: "", want: RGB{}},
		{name: "garbage decodes to black", hex: "not-a-colour", want: RGB{}},
		{name: "wrong length decodes to black", hex: "#ffff", want: RGB{}},
		{name: "non-hex digits decode to black", hex: "#gghhii", want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexToRGB(tt.hex); got != tt.want {
				t.Errorf("HexToRGB(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#1a2b3c", "#cd3131", "#0dbc79"} {
		if got := HexToRGB(hex).Hex(); got != hex {
			t.Errorf("round trip of %s produced %s", hex, got)
		}
	}
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#FFAA00", "#ffaa00"},
		{"abc", "#aabbcc"},
		{"bogus", "#000000"},
		{"", "#000000"},
	}

	for _, tt := range tests {
		if got := Normalise(tt.in); got != tt.want {
			t.Errorf("Normalise(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBrightness(t *testing.T) {
	if got := Brightness("#000000"); got != 0 {
		t.Errorf("black brightness = %f, want 0", got)
	}
	if got := Brightness("#ffffff"); math.Abs(got-255) > 0.001 {
		t.Errorf("white brightness = %f, want 255", got)
	}

	// Green must outweigh red, red must outweigh blue at full channel value.
	r, g, b := Brightness("#ff0000"), Brightness("#00ff00"), Brightness("#0000ff")
	if !(g > r && r > b) {
		t.Errorf("luma ordering wrong: r=%f g=%f b=%f", r, g, b)
	}
}

func TestChannelValue(t *testing.T) {
	hex := "#102030"
	if got := channelValue(hex, 'r'); got != 0x10 {
		t.Errorf("r channel = %f, want 16", got)
	}
	if got := channelValue(hex, 'g'); got != 0x20 {
		t.Errorf("g channel = %f, want 32", got)
	}
	if got := channelValue(hex, 'b'); got != 0x30 {
		t.Errorf("b channel = %f, want 48", got)
	}
}

func TestLighten(t *testing.T) {
	t.Run("raises value", func(t *testing.T) {
		in := "#803030"
		out := Lighten(in)
		if Brightness(out) <= Brightness(in) {
			t.Errorf("Lighten(%s) = %s did not get brighter", in, out)
		}
	})

	t.Run("white stays white", func(t *testing.T) {
		// Value already at 1.0 and saturation at 0; only clamping applies.
		if got := Lighten("#ffffff"); got != "#ffffff" {
			t.Errorf("Lighten(white) = %s", got)
		}
	})

	t.Run("stays in bounds under repetition", func(t *testing.T) {
		hex := "#cd3131"
		for i := 0; i < 10; i++ {
			hex = Lighten(hex)
			if HexToRGB(hex).Hex() != hex {
				t.Fatalf("iteration %d produced invalid colour %q", i, hex)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		if Lighten("#2472c8") != Lighten("#2472c8") {
			t.Error("same input produced different outputs")
		}
	})
}
