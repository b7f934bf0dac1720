package stubapi

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tourdesk/ratelim"
)

// health check
func index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// AddRoutes wires the full stub surface onto the router.
func AddRoutes(router *httprouter.Router, h *Handlers, secret []byte, rl *ratelim.RateLimiter) {
	router.GET("/health", index)

	router.POST("/api/auth/login", rl.Limit(h.Login(secret)))

	auth := func(next httprouter.Handle) httprouter.Handle {
		return Authenticate(secret, next)
	}

	router.GET("/api/tours", auth(h.ListTours))
	router.GET("/api/tours/:id", auth(h.GetTour))
	router.POST("/api/tours", auth(h.CreateTour))
	router.PATCH("/api/tours/:id", auth(h.UpdateTour))
	router.DELETE("/api/tours/:id", auth(h.DeleteTour))
	router.POST("/api/tours/:id/gallery", auth(h.UploadGallery))

	router.GET("/api/category/user/:userId", auth(h.Categories))
	router.GET("/api/facts/user/:userId", auth(h.Facts))
	router.GET("/api/faqs/user/:userId", auth(h.FAQs))
	router.GET("/api/global/destinations/user-destinations", auth(h.Destinations))
}
