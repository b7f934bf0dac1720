package stubapi

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *Handlers) Login(secret []byte) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		user, ok := h.store.UserByEmail(req.Email)
		if !ok {
			RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
			RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := IssueToken(secret, user.ID, user.Email)
		if err != nil {
			RespondWithError(w, http.StatusInternalServerError, "Could not issue token")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{
			"token":  token,
			"userId": user.ID,
		})
	}
}
