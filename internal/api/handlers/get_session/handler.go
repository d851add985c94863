package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-CarWash/internal/api/handlers"
	"github.com/m04kA/SMC-CarWash/internal/api/middleware"
	"github.com/m04kA/SMC-CarWash/internal/service/auth/models"
)

// Handler отдает состояние сессии, загруженной middleware.Session
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, models.NewSessionResponse(middleware.GetSession(r.Context())))
}
