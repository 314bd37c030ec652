package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/export"
	imagepkg "github.com/jmylchreest/tincture/internal/image"
)

// maxUploadBytes caps image uploads to POST /api/colors/extract.
const maxUploadBytes = 32 << 20

type apiHandler struct {
	logger         hclog.Logger
	extractTimeout time.Duration
}

// exportRequest is the POST /api/export body.
type exportRequest struct {
	Format    string    `json:"format"`
	Mode      string    `json:"mode,omitempty"`
	ThemeData themeData `json:"theme_data"`
}

type themeData struct {
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

func (h *apiHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	palette := colour.Palette{}
	for role, hex := range req.ThemeData.Colors {
		palette[colour.Role(role)] = hex
	}

	artifact, err := export.Export(export.Request{
		Format:  export.Format(req.Format),
		Name:    req.ThemeData.Name,
		Palette: palette,
		Mode:    export.Mode(req.Mode),
	})
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported format: %s", req.Format))
			return
		}
		h.logger.Error("export failed", "format", req.Format, "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Content)
}

func (h *apiHandler) handleExtract(w http.ResponseWriter, r *http.Request) {
	body, err := openUpload(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer body.Close()

	img, err := imagepkg.Decode(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("could not decode image: %v", err))
		return
	}

	cfg := colour.DefaultConfig()
	if h.extractTimeout > 0 {
		cfg.Timeout = h.extractTimeout
	}
	colours, err := colour.ExtractColours(r.Context(), img, cfg)
	if err != nil {
		h.logger.Warn("extraction failed", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"colors": nil,
			"error":  "could not extract colors from image",
		})
		return
	}

	palette := colour.ValidatePalette(colour.MapRoles(colours))
	colors := make(map[string]string, len(palette))
	for role, hex := range palette {
		colors[string(role)] = hex
	}
	writeJSON(w, http.StatusOK, map[string]any{"colors": colors})
}

func (h *apiHandler) handlePresets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"presets": listPresets()})
}

// openUpload returns the image payload of an extract request. Multipart
// uploads must carry the image in an "image" form file; otherwise the request
// body itself is the image and must be posted with an image/* content type.
// The content type is rejected before any decode work happens.
func openUpload(w http.ResponseWriter, r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, fmt.Errorf("invalid multipart body: %w", err)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			return nil, errors.New("missing image file")
		}
		if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
			file.Close()
			return nil, errors.New("file must be an image")
		}
		return file, nil
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, errors.New("file must be an image")
	}
	return r.Body, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
