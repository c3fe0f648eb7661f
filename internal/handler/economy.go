package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
	"github.com/lkacz/PersonalFreedom-sub001/internal/profile"
	"github.com/lkacz/PersonalFreedom-sub001/internal/store"
)

type AddCoinsRequest struct {
	ProfileID string `json:"profile_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Amount    int64  `json:"amount" validate:"min=0"`
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// HandleAddCoins credits coins to a profile
// @Summary Add coins
// @Description Credit coins to a profile, clamped at the balance ceiling
// @Tags economy
// @Accept json
// @Produce json
// @Param request body AddCoinsRequest true "Credit details"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /coins/add [post]
func HandleAddCoins(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AddCoinsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode add coins request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		balance, err := svc.AddCoins(r.Context(), req.ProfileID, req.Amount)
		if err != nil {
			log.Error("Failed to add coins", "error", err, "profileID", req.ProfileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Coins added", "profileID", req.ProfileID, "amount", req.Amount, "balance", balance)

		respondJSON(w, http.StatusOK, BalanceResponse{Balance: balance})
	}
}

type SpendCoinsRequest struct {
	ProfileID string `json:"profile_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Amount    int64  `json:"amount" validate:"min=0"`
}

type SpendCoinsResponse struct {
	Spent bool `json:"spent"`
}

// HandleSpendCoins debits coins from a profile if the balance covers it
// @Summary Spend coins
// @Description Debit coins from a profile; fails without partial deduction when the balance is short
// @Tags economy
// @Accept json
// @Produce json
// @Param request body SpendCoinsRequest true "Debit details"
// @Success 200 {object} SpendCoinsResponse
// @Failure 400 {object} ErrorResponse
// @Router /coins/spend [post]
func HandleSpendCoins(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SpendCoinsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode spend coins request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		spent, err := svc.SpendCoins(r.Context(), req.ProfileID, req.Amount)
		if err != nil {
			log.Error("Failed to spend coins", "error", err, "profileID", req.ProfileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Spend attempted", "profileID", req.ProfileID, "amount", req.Amount, "spent", spent)

		respondJSON(w, http.StatusOK, SpendCoinsResponse{Spent: spent})
	}
}

type SellItemsRequest struct {
	ProfileID  string   `json:"profile_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Identities []string `json:"identities" validate:"required,min=1,max=100,dive,required,max=200"`
}

type SellItemsResponse struct {
	Result store.SellResult `json:"result"`
}

// HandleSellItems sells referenced items for coins
// @Summary Sell items
// @Description Remove referenced items and credit their sale value as one transaction
// @Tags economy
// @Accept json
// @Produce json
// @Param request body SellItemsRequest true "Items to sell"
// @Success 200 {object} SellItemsResponse
// @Failure 400 {object} ErrorResponse
// @Router /items/sell [post]
func HandleSellItems(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellItemsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode sell request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		result, err := svc.SellItems(r.Context(), req.ProfileID, req.Identities)
		if err != nil {
			log.Error("Failed to sell items", "error", err, "profileID", req.ProfileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Info("Items sold", "profileID", req.ProfileID, "sold", result.ItemsSold, "coins", result.CoinsGained)

		respondJSON(w, http.StatusOK, SellItemsResponse{Result: result})
	}
}

type MergeItemsRequest struct {
	ProfileID  string   `json:"profile_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Sources    []string `json:"sources" validate:"required,min=2,max=10,dive,required,max=200"`
	ResultName string   `json:"result_name" validate:"required,max=100"`
}

type MergeItemsResponse struct {
	Merged bool `json:"merged"`
}

// HandleMergeItems combines source items into a new item
// @Summary Merge items
// @Description Consume all source items and add the merged result; fails without changes if any source is missing
// @Tags economy
// @Accept json
// @Produce json
// @Param request body MergeItemsRequest true "Merge details"
// @Success 200 {object} MergeItemsResponse
// @Failure 400 {object} ErrorResponse
// @Router /items/merge [post]
func HandleMergeItems(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req MergeItemsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode merge request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		merged, err := svc.MergeItems(r.Context(), req.ProfileID, req.Sources, req.ResultName)
		if err != nil {
			log.Error("Failed to merge items", "error", err, "profileID", req.ProfileID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if !merged {
			log.Warn("Merge rejected", "profileID", req.ProfileID, "sources", len(req.Sources))
			respondError(w, http.StatusBadRequest, ErrMsgMergeSourceMissingErr)
			return
		}

		log.Info("Items merged", "profileID", req.ProfileID, "result", req.ResultName)

		respondJSON(w, http.StatusOK, MergeItemsResponse{Merged: true})
	}
}
