package handler

import (
	"net/http"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/profile"
	"github.com/lkacz/PersonalFreedom-sub001/internal/stats"
	"github.com/lkacz/PersonalFreedom-sub001/internal/store"
)

// StateResponse is the full progression snapshot for a profile
type StateResponse struct {
	ProfileID      string                 `json:"profile_id"`
	Items          []domain.Item          `json:"items"`
	Equipped       map[string]domain.Item `json:"equipped"`
	Coins          int64                  `json:"coins"`
	TotalXP        int64                  `json:"total_xp"`
	Level          int                    `json:"level"`
	Luck           int                    `json:"luck"`
	TotalCollected int64                  `json:"total_collected"`
	TotalPower     int                    `json:"total_power"`
	EquippedPower  int                    `json:"equipped_power"`
}

// HandleGetState returns the full progression state for a profile
// @Summary Get profile state
// @Description Get the complete progression snapshot for a profile
// @Tags state
// @Produce json
// @Param profile_id query string true "Profile ID"
// @Success 200 {object} StateResponse
// @Failure 400 {object} ErrorResponse
// @Router /state [get]
func HandleGetState(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		profileID := r.URL.Query().Get("profile_id")
		state, err := svc.GetState(r.Context(), profileID)
		if err != nil {
			log.Warn("Failed to get profile state", "error", err, "profileID", profileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, StateResponse{
			ProfileID:      profileID,
			Items:          state.Items,
			Equipped:       state.Equipped,
			Coins:          state.Counters.Coins,
			TotalXP:        state.Counters.TotalXP,
			Level:          store.LevelForXP(state.Counters.TotalXP),
			Luck:           state.Counters.Luck,
			TotalCollected: state.TotalCollected,
			TotalPower:     stats.TotalPower(state.Items),
			EquippedPower:  stats.EquippedPower(state.Equipped),
		})
	}
}

// InventoryResponse lists a profile's items
type InventoryResponse struct {
	ProfileID string        `json:"profile_id"`
	Items     []domain.Item `json:"items"`
	Count     int           `json:"count"`
}

// HandleGetInventory returns the inventory for a profile
// @Summary Get inventory
// @Description List all items held by a profile
// @Tags state
// @Produce json
// @Param profile_id query string true "Profile ID"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /state/inventory [get]
func HandleGetInventory(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		profileID := r.URL.Query().Get("profile_id")
		state, err := svc.GetState(r.Context(), profileID)
		if err != nil {
			log.Warn("Failed to get inventory", "error", err, "profileID", profileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, InventoryResponse{
			ProfileID: profileID,
			Items:     state.Items,
			Count:     len(state.Items),
		})
	}
}

// EquipmentResponse lists a profile's equipped items by slot
type EquipmentResponse struct {
	ProfileID     string                 `json:"profile_id"`
	Equipped      map[string]domain.Item `json:"equipped"`
	EquippedPower int                    `json:"equipped_power"`
}

// HandleGetEquipment returns the equipped items for a profile
// @Summary Get equipment
// @Description List the items equipped by a profile, keyed by slot
// @Tags state
// @Produce json
// @Param profile_id query string true "Profile ID"
// @Success 200 {object} EquipmentResponse
// @Failure 400 {object} ErrorResponse
// @Router /state/equipment [get]
func HandleGetEquipment(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		profileID := r.URL.Query().Get("profile_id")
		state, err := svc.GetState(r.Context(), profileID)
		if err != nil {
			log.Warn("Failed to get equipment", "error", err, "profileID", profileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, EquipmentResponse{
			ProfileID:     profileID,
			Equipped:      state.Equipped,
			EquippedPower: stats.EquippedPower(state.Equipped),
		})
	}
}
