package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour as three 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// String returns the colour in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// HexToRGB parses a 3- or 6-digit hex colour, with or without a leading "#".
// 3-digit forms are channel-doubled ("#abc" -> "#aabbcc"). Parsing is
// deliberately lenient: any malformed input decodes to black rather than
// returning an error, so a bad colour degrades instead of failing a whole
// palette operation.
func HexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Normalise returns the canonical form of a hex colour: lowercase, 6 digits,
// leading "#". Malformed input normalises to "#000000" per the lenient
// decoding policy.
func Normalise(hex string) string {
	return HexToRGB(hex).Hex()
}

// Brightness returns the weighted luminance of a hex colour on a 0-255 scale.
// The weights are the classic ITU-R 601 luma coefficients; the value is only
// used for relative ordering, not perceptual accuracy.
func Brightness(hex string) float64 {
	return HexToRGB(hex).luma()
}

func (c RGB) luma() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// channelValue returns a single colour channel of a hex colour, selected by
// the channel proxy used for role mapping.
func channelValue(hex string, ch byte) float64 {
	rgb := HexToRGB(hex)
	switch ch {
	case 'r':
		return float64(rgb.R)
	case 'g':
		return float64(rgb.G)
	case 'b':
		return float64(rgb.B)
	}
	return 0
}

// Lighten produces the bright variant of a colour: convert to HSV, reduce
// saturation by 0.1 (floored at 0) and raise value by 0.2 (capped at 1.0).
// Deterministic, and safe to apply repeatedly (channels stay in bounds).
func Lighten(hex string) string {
	rgb := HexToRGB(hex)
	c := colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}

	h, s, v := c.Hsv()
	s = math.Max(0, s-0.1)
	v = math.Min(1.0, v+0.2)

	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}.Hex()
}
