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
	"reparo_pro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", asActor(testAdmin, h.Create))

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non admin forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", asActor(testEstimator, h.Create))

		uc.EXPECT().Create(gomock.Any(), testEstimator, gomock.Any(), "secret123").Return(entities.User{}, usecase.ErrForbidden)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"name":"Dora","email":"dora@reparopro.com","password":"secret123","role":"viewer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", asActor(testAdmin, h.Create))

		uc.EXPECT().Create(gomock.Any(), testAdmin, gomock.Any(), "secret123").Return(entities.User{}, usecase.ErrEmailTaken)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"name":"Dora","email":"dora@reparopro.com","password":"secret123","role":"viewer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", asActor(testAdmin, h.Create))

		uc.EXPECT().
			Create(gomock.Any(), testAdmin, entities.User{Name: "Dora", Email: "dora@reparopro.com", Role: entities.UserRoleViewer}, "secret123").
			Return(entities.User{ID: "user-9", Name: "Dora", Email: "dora@reparopro.com", Role: entities.UserRoleViewer, Status: entities.UserStatusActive}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"name":"Dora","email":"dora@reparopro.com","password":"secret123","role":"viewer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error decoding body: %v", err)
		}
		if body["id"] != "user-9" {
			t.Fatalf("expected id user-9, got %v", body["id"])
		}
	})
}

func TestUserHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forbidden for estimator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/v1/users", asActor(testEstimator, h.List))

		uc.EXPECT().List(gomock.Any(), testEstimator).Return(nil, usecase.ErrForbidden)

		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/v1/users", asActor(testAdmin, h.List))

		uc.EXPECT().List(gomock.Any(), testAdmin).Return([]entities.User{{ID: "user-1"}, {ID: "user-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error decoding body: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 users, got %d", len(body))
		}
	})
}

func TestUserHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.PATCH("/v1/users/:id/status", asActor(testAdmin, h.SetStatus))

		uc.EXPECT().SetStatus(gomock.Any(), testAdmin, "missing", entities.UserStatusInactive).Return(entities.User{}, usecase.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/users/missing/status", bytes.NewBufferString(`{"status":"inactive"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.PATCH("/v1/users/:id/status", asActor(testAdmin, h.SetStatus))

		uc.EXPECT().SetStatus(gomock.Any(), testAdmin, "user-2", entities.UserStatusInactive).Return(entities.User{ID: "user-2", Status: entities.UserStatusInactive}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/users/user-2/status", bytes.NewBufferString(`{"status":"inactive"}`))
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
		if body["status"] != string(entities.UserStatusInactive) {
			t.Fatalf("expected status inactive, got %v", body["status"])
		}
	})
}

func TestMapUserError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid payload", usecase.ErrInvalidUserPayload, http.StatusBadRequest},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"not found", usecase.ErrUserNotFound, http.StatusNotFound},
		{"email taken", usecase.ErrEmailTaken, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapUserError(tc.err); got.HTTPStatus != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, got.HTTPStatus)
			}
		})
	}
}
