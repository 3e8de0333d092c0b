package dating

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/imadgeboyega/kiekky-matcher/internal/auth"
	"github.com/imadgeboyega/kiekky-matcher/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// FindMatches ranks the directory against the authenticated user
func (h *Handler) FindMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	params, err := ParseFindMatchesParams(r.URL.Query())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(params); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.service.FindMatches(r.Context(), userID, params)
	if err != nil {
		h.respondServiceError(w, err, "Failed to find matches")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// MatchDetails returns the factor breakdown against one candidate
func (h *Handler) MatchDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	candidateID := mux.Vars(r)["candidateId"]
	if err := utils.ValidateVar("candidateId", candidateID, "required,max=64"); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	result, err := h.service.MatchDetails(r.Context(), userID, candidateID)
	if err != nil {
		h.respondServiceError(w, err, "Failed to compute compatibility")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, CompatibilityResponse{Compatibility: result})
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrCandidateNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSelfMatch):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrIncompleteProfile):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("matching request failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, fallback)
	}
}
