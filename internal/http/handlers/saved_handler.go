// README: Saved-list read API for the companion app.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtbot/internal/http/middleware"
	"mrtbot/internal/modules/saved"
	"mrtbot/internal/types"
)

type SavedHandler struct {
	saved *saved.Service
}

func NewSavedHandler(svc *saved.Service) *SavedHandler {
	return &SavedHandler{saved: svc}
}

type shopView struct {
	ID        types.ID `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Rating    *float64 `json:"rating,omitempty"`
	PhotoRefs []string `json:"photo_refs,omitempty"`
}

// List returns the caller's saved list, newest save first.
func (h *SavedHandler) List(c *gin.Context) {
	list, err := saved.ParseListType(c.Param("list"))
	if err != nil {
		writeSavedError(c, err)
		return
	}

	uid := middleware.CallerUID(c)
	if uid == "" {
		writeError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	shops, err := h.saved.List(c.Request.Context(), types.ID(uid), list)
	if err != nil {
		writeSavedError(c, err)
		return
	}

	views := make([]shopView, 0, len(shops))
	for _, sh := range shops {
		views = append(views, shopView{
			ID:        sh.ID,
			Name:      sh.DisplayName(),
			Address:   sh.DisplayAddress(),
			Rating:    sh.Rating,
			PhotoRefs: sh.PhotoRefs,
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"list": list, "shops": views})
}
