package stubapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"

	"tourdesk/models"
)

const thumbWidth, thumbHeight = 300, 200

// UploadDir is where gallery images land; override per deployment.
var UploadDir = "./static/tourpic"

// POST /api/tours/:id/gallery
//
// The console's upload widget sends the binary here and references the
// returned URL from the tour record; tour payloads themselves only ever
// carry string references.
func (h *Handlers) UploadGallery(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	tour, ok := h.store.GetTour(id)
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	if tour.UserID != RequestUserID(r) {
		RespondWithError(w, http.StatusForbidden, "Not your tour")
		return
	}

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		RespondWithError(w, http.StatusBadRequest, "Invalid file type")
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Unreadable image")
		return
	}

	dir := filepath.Join(UploadDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Error creating upload directory")
		return
	}

	name := sanitizeFilename(header.Filename)
	full := filepath.Join(dir, name)
	if err := imaging.Save(img, full); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Error saving image")
		return
	}
	thumb := imaging.Thumbnail(img, thumbWidth, thumbHeight, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(dir, "thumb_"+name)); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Error saving thumbnail")
		return
	}

	entry := models.GalleryImage{Image: "/" + filepath.ToSlash(strings.TrimPrefix(full, "./"))}
	updated, _ := h.store.UpdateTour(id, func(t *models.Tour) {
		entry.SortOrder = len(t.Gallery)
		t.Gallery = append(t.Gallery, entry)
	})
	RespondWithJSON(w, http.StatusCreated, map[string]any{
		"image":   entry.Image,
		"gallery": updated.Gallery,
	})
}

func sanitizeFilename(name string) string {
	clean := filepath.Base(name)
	clean = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		}
		return '_'
	}, clean)
	if clean == "" || clean == "." {
		return "file"
	}
	return clean
}
