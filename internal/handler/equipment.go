package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/profile"
)

type EquipRequest struct {
	ProfileID string `json:"profile_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Slot      string `json:"slot" validate:"required,max=50,slot"`
	Identity  string `json:"identity" validate:"required,max=200"`
}

type EquipResponse struct {
	Equipped bool `json:"equipped"`
}

// HandleEquip equips an inventory item into a slot
// @Summary Equip item
// @Description Equip the referenced inventory item into the given slot
// @Tags equipment
// @Accept json
// @Produce json
// @Param request body EquipRequest true "Equip details"
// @Success 200 {object} EquipResponse
// @Failure 400 {object} ErrorResponse
// @Router /equipment/equip [post]
func HandleEquip(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req EquipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode equip request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		equipped, err := svc.Equip(r.Context(), req.ProfileID, req.Slot, req.Identity)
		if err != nil {
			log.Error("Failed to equip item", "error", err, "profileID", req.ProfileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if !equipped {
			log.Warn("Equip rejected", "profileID", req.ProfileID, "slot", req.Slot, "identity", req.Identity)
			respondError(w, http.StatusBadRequest, ErrMsgItemNotFoundError)
			return
		}

		log.Info("Item equipped", "profileID", req.ProfileID, "slot", req.Slot)

		respondJSON(w, http.StatusOK, EquipResponse{Equipped: true})
	}
}

type UnequipRequest struct {
	ProfileID string `json:"profile_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Slot      string `json:"slot" validate:"required,max=50"`
}

type UnequipResponse struct {
	Removed *domain.Item `json:"removed"`
}

// HandleUnequip clears a slot and returns the removed item
// @Summary Unequip item
// @Description Clear the given slot; the removed item stays in the inventory
// @Tags equipment
// @Accept json
// @Produce json
// @Param request body UnequipRequest true "Unequip details"
// @Success 200 {object} UnequipResponse
// @Failure 400 {object} ErrorResponse
// @Router /equipment/unequip [post]
func HandleUnequip(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req UnequipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode unequip request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		removed, err := svc.Unequip(r.Context(), req.ProfileID, req.Slot)
		if err != nil {
			log.Error("Failed to unequip item", "error", err, "profileID", req.ProfileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Slot cleared", "profileID", req.ProfileID, "slot", req.Slot, "hadItem", removed != nil)

		respondJSON(w, http.StatusOK, UnequipResponse{Removed: removed})
	}
}
