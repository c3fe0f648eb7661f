package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/profile"
	"github.com/lkacz/PersonalFreedom-sub001/internal/store"
)

type AwardRequest struct {
	ProfileID string `json:"profile_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemName  string `json:"item_name" validate:"max=100"`
	Coins     int64  `json:"coins" validate:"min=0"`
	XP        int64  `json:"xp" validate:"min=0"`
}

type AwardResponse struct {
	Result store.AwardResult `json:"result"`
}

// HandleAwardSessionRewards grants the rewards for a completed session
// @Summary Award session rewards
// @Description Grant an item, coins and XP to a profile as one transaction
// @Tags rewards
// @Accept json
// @Produce json
// @Param request body AwardRequest true "Reward details"
// @Success 200 {object} AwardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rewards/award [post]
func HandleAwardSessionRewards(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AwardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode award request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		log.Debug("Award request",
			"profileID", req.ProfileID,
			"item", req.ItemName,
			"coins", req.Coins,
			"xp", req.XP)

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		result, err := svc.AwardSessionRewards(r.Context(), req.ProfileID, req.ItemName, req.Coins, req.XP)
		if err != nil {
			log.Error("Failed to award rewards", "error", err, "profileID", req.ProfileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Rewards awarded", "profileID", req.ProfileID, "item", req.ItemName, "coins", req.Coins, "xp", req.XP, "leveledUp", result.LeveledUp)

		respondJSON(w, http.StatusOK, AwardResponse{Result: result})
	}
}
