package handler

import (
	"net/http"

	"github.com/edvin/customerservice/internal/api/middleware"
	"github.com/edvin/customerservice/internal/api/response"
)

type Session struct{}

func NewSession() *Session {
	return &Session{}
}

// Get echoes the caller's authentication context.
//
//	@Summary      Current session
//	@Description  Returns the authentication context of the caller, or null when the request is anonymous
//	@Tags         Session
//	@Produce      json
//	@Success      200  {object}  model.Session
//	@Failure      401  {object}  response.ErrorResponse
//	@Security     BearerAuth
//	@Router       /customers/mySession [get]
func (h *Session) Get(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, middleware.GetSession(r.Context()))
}
