package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lkacz/PersonalFreedom-sub001/internal/domain"
)

func TestHandleGetState(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockProfileService)
		mockSvc.On("GetState", mock.Anything, "profile-123").Return(domain.ProfileState{
			Items: []domain.Item{
				{ID: "item-1", Name: "Rusty Sword", Slot: domain.SlotWeapon, Power: 10},
			},
			Equipped: map[string]domain.Item{
				domain.SlotWeapon: {ID: "item-1", Name: "Rusty Sword", Slot: domain.SlotWeapon, Power: 10},
			},
			Counters:       domain.ResourceCounters{Coins: 150, TotalXP: 120, Luck: 5},
			TotalCollected: 3,
		}, nil)

		handler := HandleGetState(mockSvc)

		req := httptest.NewRequest("GET", "/state?profile_id=profile-123", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"coins":150`)
		assert.Contains(t, w.Body.String(), `"total_xp":120`)
		assert.Contains(t, w.Body.String(), `"total_power":10`)
		assert.Contains(t, w.Body.String(), `"equipped_power":10`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing Profile ID", func(t *testing.T) {
		mockSvc := new(MockProfileService)
		mockSvc.On("GetState", mock.Anything, "").Return(domain.ProfileState{}, domain.ErrInvalidProfileID)

		handler := HandleGetState(mockSvc)

		req := httptest.NewRequest("GET", "/state", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidProfileIDErr)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleGetInventory(t *testing.T) {
	InitValidator()

	mockSvc := new(MockProfileService)
	mockSvc.On("GetState", mock.Anything, "profile-123").Return(domain.ProfileState{
		Items: []domain.Item{
			{ID: "a", Name: "One"},
			{ID: "b", Name: "Two"},
		},
	}, nil)

	handler := HandleGetInventory(mockSvc)

	req := httptest.NewRequest("GET", "/state/inventory?profile_id=profile-123", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
	mockSvc.AssertExpectations(t)
}

func TestHandleGetEquipment(t *testing.T) {
	InitValidator()

	mockSvc := new(MockProfileService)
	mockSvc.On("GetState", mock.Anything, "profile-123").Return(domain.ProfileState{
		Equipped: map[string]domain.Item{
			domain.SlotWeapon: {ID: "item-1", Name: "Rusty Sword", Power: 10},
			domain.SlotBoots:  {ID: "item-2", Name: "Swift Boots", Power: 4},
		},
	}, nil)

	handler := HandleGetEquipment(mockSvc)

	req := httptest.NewRequest("GET", "/state/equipment?profile_id=profile-123", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"equipped_power":14`)
	assert.Contains(t, w.Body.String(), "Swift Boots")
	mockSvc.AssertExpectations(t)
}
