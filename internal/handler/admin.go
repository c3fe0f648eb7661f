package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lkacz/PersonalFreedom-sub001/internal/item"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/profile"
)

type ResetProfileRequest struct {
	ProfileID string `json:"profile_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleResetProfile wipes a profile back to empty state
// @Summary Reset profile
// @Description Clear all state for a profile, in memory and in storage
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ResetProfileRequest true "Profile to reset"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/profile/reset [post]
func HandleResetProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ResetProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode reset request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		if err := svc.Reset(r.Context(), req.ProfileID); err != nil {
			log.Error("Failed to reset profile", "error", err, "profileID", req.ProfileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Profile reset", "profileID", req.ProfileID)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Profile reset"})
	}
}

// HandleReloadCatalog re-reads the item definition file
// @Summary Reload item catalog
// @Description Reload item definitions from disk without restarting
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/catalog/reload [post]
func HandleReloadCatalog(catalog item.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := catalog.Reload(); err != nil {
			log.Error("Failed to reload item catalog", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to reload catalog")
			return
		}

		log.Info("Item catalog reloaded", "items", len(catalog.Names()))

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Catalog reloaded"})
	}
}
