package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"eaglesounds.in/internal/assets"
	"eaglesounds.in/internal/models"
	"eaglesounds.in/internal/services"
)

// multipartMemory is how much of a multipart body is kept in memory
// before parts spill to temporary files
const multipartMemory = 8 << 20

// UploadHandler handles the admin image upload endpoint
type UploadHandler struct {
	uploadService *services.UploadService
	maxBytes      int64
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(us *services.UploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{uploadService: us, maxBytes: maxBytes}
}

// UploadImage handles POST /api/upload-image
//
// Multipart fields: imageFile, targetFilename and targetPath. The file is
// written to targetPath/targetFilename under the public root, replacing any
// existing file.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			respondMessage(w, http.StatusRequestEntityTooLarge, "File too large")
		case errors.Is(err, http.ErrNotMultipart):
			respondMessage(w, http.StatusBadRequest, "Missing required fields")
		default:
			respondMessage(w, http.StatusInternalServerError, "Error uploading file: "+err.Error())
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("imageFile")
	targetFilename := r.FormValue("targetFilename")
	if err != nil || strings.TrimSpace(targetFilename) == "" {
		if file != nil {
			file.Close()
		}
		respondMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	defer file.Close()

	target := assets.Target{Path: r.FormValue("targetPath"), Filename: targetFilename}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(targetFilename))
	}

	filePath, err := h.uploadService.Upload(r.Context(), target, file, header.Size, contentType)
	if err != nil {
		if errors.Is(err, assets.ErrMissingName) {
			respondMessage(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		if errors.Is(err, services.ErrInvalidTarget) {
			respondMessage(w, http.StatusBadRequest, "Invalid target path")
			return
		}
		respondMessage(w, http.StatusInternalServerError, "Error uploading file: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.UploadResult{
		Message:  "File uploaded successfully",
		FilePath: filePath,
	})
}

// respondMessage writes the {message} body the image manager expects
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.UploadResult{Message: message})
}

// AssetHandler serves public assets from the upload store
type AssetHandler struct {
	uploadService *services.UploadService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(us *services.UploadService) *AssetHandler {
	return &AssetHandler{uploadService: us}
}

// Serve handles GET /* for files under the public root
func (h *AssetHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if key == "" || strings.HasPrefix(path.Base(key), ".") {
		http.NotFound(w, r)
		return
	}

	rc, err := h.uploadService.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) || errors.Is(err, assets.ErrOutsideRoot) {
			http.NotFound(w, r)
			return
		}
		respondError(w, http.StatusInternalServerError, "Error reading file")
		return
	}
	defer rc.Close()

	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}

	// Local files support range requests and conditional GETs
	if rs, ok := rc.(io.ReadSeeker); ok {
		http.ServeContent(w, r, path.Base(key), time.Time{}, rs)
		return
	}
	io.Copy(w, rc)
}
