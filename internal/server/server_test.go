package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/jmylchreest/tincture/internal/colour"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	return New(Options{Addr: ":0"}).Handler()
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleExport(t *testing.T) {
	h := testHandler(t)

	rec := postJSON(t, h, "/api/export", map[string]any{
		"format": "kitty",
		"theme_data": map[string]any{
			"name": "API Theme",
			"colors": map[string]string{
				"background": "#101010",
				"foreground": "#fafafa",
			},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != "attachment; filename=API_Theme.conf" {
		t.Errorf("Content-Disposition = %q", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "background #101010") {
		t.Errorf("export body missing background:\n%s", body)
	}
	// Missing roles are filled by validation before generation.
	if !strings.Contains(body, "color15") {
		t.Error("export body missing validated palette slots")
	}
}

func TestHandleExportUnsupportedFormat(t *testing.T) {
	h := testHandler(t)

	rec := postJSON(t, h, "/api/export", map[string]any{
		"format":     "vt52",
		"theme_data": map[string]any{"name": "X", "colors": map[string]string{}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unsupported format") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleExportBadBody(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// encodeTestPNG renders a half-black half-white image as PNG bytes.
func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := color.RGBA{A: 255}
			if x >= 4 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestHandleExtractRawBody(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/colors/extract", bytes.NewReader(encodeTestPNG(t)))
	req.Header.Set("Content-Type", "image/png")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Colors map[string]string `json:"colors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}

	// The endpoint returns a full validated role->hex palette, not the raw
	// candidate list.
	palette := colour.Palette{}
	for role, hex := range resp.Colors {
		palette[colour.Role(role)] = hex
	}
	if !palette.Complete() {
		t.Fatalf("palette incomplete: %v", resp.Colors)
	}
	if resp.Colors["background"] != "#000000" {
		t.Errorf("background = %q, want #000000", resp.Colors["background"])
	}
	if resp.Colors["foreground"] != "#ffffff" {
		t.Errorf("foreground = %q, want #ffffff", resp.Colors["foreground"])
	}
}

func TestHandleExtractMultipart(t *testing.T) {
	h := testHandler(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="test.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(encodeTestPNG(t)); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/colors/extract", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestHandleExtractRejectsNonImage(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/colors/extract", strings.NewReader("plain text"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "must be an image") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestHandleExtractUndecodableImage(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/colors/extract", strings.NewReader("not actually a png"))
	req.Header.Set("Content-Type", "image/png")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandlePresets(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/presets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Presets []struct {
			Name   string            `json:"name"`
			Colors map[string]string `json:"colors"`
		} `json:"presets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(resp.Presets) != 7 {
		t.Fatalf("got %d presets", len(resp.Presets))
	}
	if resp.Presets[0].Name != "Tokyo Night" {
		t.Errorf("first preset = %q", resp.Presets[0].Name)
	}
	if resp.Presets[0].Colors["background"] != "#1a1b26" {
		t.Errorf("tokyo night background = %q", resp.Presets[0].Colors["background"])
	}
}

func TestMethodRouting(t *testing.T) {
	h := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/export status = %d, want 405", rec.Code)
	}
}
