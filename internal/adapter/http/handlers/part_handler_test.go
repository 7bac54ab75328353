package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reparo_pro/internal/adapter/http/handlers/mocks"
	"reparo_pro/internal/domain/entities"
	"reparo_pro/internal/domain/registry"
	"reparo_pro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPartHandler_TogglePart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown part id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/parts/:part_id/toggle", asActor(testEstimator, h.TogglePart))

		uc.EXPECT().TogglePart(gomock.Any(), testEstimator, "q-1", "wings").Return(entities.Quote{}, registry.ErrUnknownPart)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/parts/wings/toggle", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/parts/:part_id/toggle", asActor(testEstimator, h.TogglePart))

		uc.EXPECT().TogglePart(gomock.Any(), testEstimator, "q-1", "hood").Return(entities.Quote{
			ID:           "q-1",
			DamagedParts: map[string]entities.DamagedPart{"hood": {PartID: "hood", PartName: "Capô"}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/parts/hood/toggle", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error decoding body: %v", err)
		}
		parts, ok := body["damaged_parts"].(map[string]any)
		if !ok || len(parts) != 1 {
			t.Fatalf("expected one damaged part, got %v", body["damaged_parts"])
		}
	})
}

func TestPartHandler_SetServiceSelected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing selected flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/parts/:part_id/services", asActor(testEstimator, h.SetServiceSelected))

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/parts/hood/services", bytes.NewBufferString(`{"service_name":"Pintura (Base)"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("part not flagged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/parts/:part_id/services", asActor(testEstimator, h.SetServiceSelected))

		uc.EXPECT().SetServiceSelected(gomock.Any(), testEstimator, "q-1", "hood", "Pintura (Base)", true).Return(entities.Quote{}, registry.ErrPartNotDamaged)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/parts/hood/services", bytes.NewBufferString(`{"service_name":"Pintura (Base)","selected":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/parts/:part_id/services", asActor(testEstimator, h.SetServiceSelected))

		uc.EXPECT().SetServiceSelected(gomock.Any(), testEstimator, "q-1", "hood", "Polimento", false).Return(entities.Quote{ID: "q-1"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/parts/hood/services", bytes.NewBufferString(`{"service_name":"Polimento","selected":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPartHandler_UpdateServiceHours(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/parts/:part_id/services/:service_id/hours", asActor(testEstimator, h.UpdateServiceHours))

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/parts/hood/services/svc-1/hours", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/parts/:part_id/services/:service_id/hours", asActor(testEstimator, h.UpdateServiceHours))

		uc.EXPECT().UpdateServiceHours(gomock.Any(), testEstimator, "q-1", "hood", "svc-1", 3.5).Return(entities.Quote{ID: "q-1"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/parts/hood/services/svc-1/hours", bytes.NewBufferString(`{"labor_hours":3.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPartHandler_LineItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add with blank name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/parts/:part_id/items", asActor(testEstimator, h.AddLineItem))

		uc.EXPECT().
			AddLineItem(gomock.Any(), testEstimator, "q-1", "hood", registry.LineItemPart, entities.LineItem{Name: "  ", Quantity: 1, UnitCost: 300}).
			Return(entities.Quote{}, registry.ErrInvalidLineItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/parts/hood/items", bytes.NewBufferString(`{"kind":"part","name":"  ","quantity":1,"unit_cost":300}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("add", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/parts/:part_id/items", asActor(testEstimator, h.AddLineItem))

		uc.EXPECT().
			AddLineItem(gomock.Any(), testEstimator, "q-1", "hood", registry.LineItemPart, entities.LineItem{Name: "Capô novo", Quantity: 1, UnitCost: 300}).
			Return(entities.Quote{ID: "q-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/parts/hood/items", bytes.NewBufferString(`{"kind":"part","name":"Capô novo","quantity":1,"unit_cost":300}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update keeps item id from path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.PUT("/v1/quotes/:id/parts/:part_id/items/:item_id", asActor(testEstimator, h.UpdateLineItem))

		uc.EXPECT().
			UpdateLineItem(gomock.Any(), testEstimator, "q-1", "hood", registry.LineItemMaterial, entities.LineItem{ID: "item-1", Name: "Verniz HS", Quantity: 2, UnitCost: 45}).
			Return(entities.Quote{ID: "q-1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/quotes/q-1/parts/hood/items/item-1", bytes.NewBufferString(`{"kind":"material","name":"Verniz HS","quantity":2,"unit_cost":45}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove uses kind query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.DELETE("/v1/quotes/:id/parts/:part_id/items/:item_id", asActor(testEstimator, h.RemoveLineItem))

		uc.EXPECT().
			RemoveLineItem(gomock.Any(), testEstimator, "q-1", "hood", registry.LineItemMaterial, "item-1").
			Return(entities.Quote{ID: "q-1"}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1/parts/hood/items/item-1?kind=material", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPartHandler_SuggestRepairs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/suggestion", asActor(testEstimator, h.SuggestRepairs))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/suggestion", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/suggestion", asActor(testEstimator, h.SuggestRepairs))

		uc.EXPECT().
			SuggestRepairs(gomock.Any(), testEstimator, "q-1", "capô amassado").
			Return(entities.Quote{}, entities.RepairSuggestion{}, errors.New("gemini unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/suggestion", bytes.NewBufferString(`{"description":"capô amassado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success returns quote and suggestion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDamagedPartUseCase(ctrl)
		h := NewPartHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/suggestion", asActor(testEstimator, h.SuggestRepairs))

		uc.EXPECT().
			SuggestRepairs(gomock.Any(), testEstimator, "q-1", "capô amassado com pintura danificada").
			Return(
				entities.Quote{ID: "q-1", DamagedParts: map[string]entities.DamagedPart{"hood": {PartID: "hood", PartName: "Capô"}}},
				entities.RepairSuggestion{DamagedParts: []string{"hood"}, SuggestedServices: map[string][]string{"hood": {"Pintura (Base)"}}},
				nil,
			)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/suggestion", bytes.NewBufferString(`{"description":"capô amassado com pintura danificada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error decoding body: %v", err)
		}
		if _, ok := body["quote"]; !ok {
			t.Fatalf("expected quote in body, got %v", body)
		}
		if _, ok := body["suggestion"]; !ok {
			t.Fatalf("expected suggestion in body, got %v", body)
		}
	})
}

func TestMapPartError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid line item", registry.ErrInvalidLineItem, http.StatusUnprocessableEntity},
		{"empty damage description", usecase.ErrEmptyDamageDescription, http.StatusUnprocessableEntity},
		{"unknown part", registry.ErrUnknownPart, http.StatusBadRequest},
		{"unknown service", registry.ErrUnknownService, http.StatusBadRequest},
		{"part not damaged", registry.ErrPartNotDamaged, http.StatusNotFound},
		{"service not found", registry.ErrServiceNotFound, http.StatusNotFound},
		{"line item not found", registry.ErrLineItemNotFound, http.StatusNotFound},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"quote not found", usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"suggestion unavailable", usecase.ErrSuggestionUnavailable, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapPartError(tc.err); got.HTTPStatus != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, got.HTTPStatus)
			}
		})
	}
}
