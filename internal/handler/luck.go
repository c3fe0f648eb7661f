package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/profile"
)

type AddLuckRequest struct {
	ProfileID string `json:"profile_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Amount    int    `json:"amount" validate:"min=0"`
}

type LuckResponse struct {
	Luck int `json:"luck"`
}

// HandleAddLuck credits luck to a profile
// @Summary Add luck
// @Description Credit luck to a profile, clamped at the luck ceiling
// @Tags luck
// @Accept json
// @Produce json
// @Param request body AddLuckRequest true "Credit details"
// @Success 200 {object} LuckResponse
// @Failure 400 {object} ErrorResponse
// @Router /luck/add [post]
func HandleAddLuck(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddLuckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode add luck request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		luck, err := svc.AddLuck(r.Context(), req.ProfileID, req.Amount)
		if err != nil {
			log.Error("Failed to add luck", "error", err, "profileID", req.ProfileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Luck added", "profileID", req.ProfileID, "amount", req.Amount, "luck", luck)

		respondJSON(w, http.StatusOK, LuckResponse{Luck: luck})
	}
}

type DecayLuckRequest struct {
	ProfileID string `json:"profile_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleDecayLuck applies one decay step to a profile's luck
// @Summary Decay luck
// @Description Reduce a profile's luck by one decay step, never below zero
// @Tags luck
// @Accept json
// @Produce json
// @Param request body DecayLuckRequest true "Profile"
// @Success 200 {object} LuckResponse
// @Failure 400 {object} ErrorResponse
// @Router /luck/decay [post]
func HandleDecayLuck(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req DecayLuckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode decay luck request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		luck, err := svc.DecayLuck(r.Context(), req.ProfileID)
		if err != nil {
			log.Error("Failed to decay luck", "error", err, "profileID", req.ProfileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Luck decayed", "profileID", req.ProfileID, "luck", luck)

		respondJSON(w, http.StatusOK, LuckResponse{Luck: luck})
	}
}
