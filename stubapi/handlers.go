package stubapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tourdesk/models"
)

const maxFormMemory = 10 << 20

type Handlers struct {
	store *Store
}

func NewHandlers(store *Store) *Handlers {
	return &Handlers{store: store}
}

// GET /api/tours/:id
func (h *Handlers) GetTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, ok := h.store.GetTour(ps.ByName("id"))
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, tour)
}

// GET /api/tours
func (h *Handlers) ListTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tours := h.store.ListTours(RequestUserID(r))
	RespondWithJSON(w, http.StatusOK, tours)
}

// POST /api/tours (multipart)
func (h *Handlers) CreateTour(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	tour := &models.Tour{
		UserID:     RequestUserID(r),
		TourStatus: string(models.StatusDraft),
	}
	if err := applySections(r, tour); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if tour.Title == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing tour title")
		return
	}

	h.store.InsertTour(tour)
	RespondWithJSON(w, http.StatusCreated, tour)
}

// PATCH /api/tours/:id (multipart, sparse)
func (h *Handlers) UpdateTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	userID := RequestUserID(r)
	existing, ok := h.store.GetTour(id)
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	if existing.UserID != userID {
		RespondWithError(w, http.StatusForbidden, "Not your tour")
		return
	}

	// apply onto a copy so a half-decoded body never reaches the store
	next := *existing
	if err := applySections(r, &next); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, _ := h.store.UpdateTour(id, func(t *models.Tour) {
		*t = next
	})
	RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/tours/:id
func (h *Handlers) DeleteTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	existing, ok := h.store.GetTour(id)
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	if existing.UserID != RequestUserID(r) {
		RespondWithError(w, http.StatusForbidden, "Not your tour")
		return
	}
	h.store.DeleteTour(id)
	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Tour deleted"})
}

// GET /api/category/user/:userId
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	RespondWithJSON(w, http.StatusOK, h.store.Categories(ps.ByName("userId")))
}

// GET /api/facts/user/:userId
func (h *Handlers) Facts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	RespondWithJSON(w, http.StatusOK, h.store.Facts(ps.ByName("userId")))
}

// GET /api/faqs/user/:userId
func (h *Handlers) FAQs(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	RespondWithJSON(w, http.StatusOK, h.store.FAQs(ps.ByName("userId")))
}

// GET /api/global/destinations/user-destinations
func (h *Handlers) Destinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	RespondWithJSON(w, http.StatusOK, h.store.Destinations())
}
