package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"socis_remeses/internal/adapter/http/handlers/mocks"
	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMemberHandler_CreateMember(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMemberUseCase(ctrl)
		h := NewMemberHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/members", h.CreateMember)

		req := httptest.NewRequest(http.MethodPost, "/v1/members", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad email is rejected before the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMemberUseCase(ctrl)
		h := NewMemberHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/members", h.CreateMember)

		req := httptest.NewRequest(http.MethodPost, "/v1/members", bytes.NewBufferString(`{"first_name":"Anna","email":"nope"}`))
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
		uc := mocks.NewMockIMemberUseCase(ctrl)
		h := NewMemberHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.MemberInput) (entities.Member, error) {
			if in.Email != "anna@example.org" || !in.JoinDate.Equal(time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)) {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.Member{ID: "m1", FirstName: "Anna", LastName: "Puig", Email: in.Email, Status: entities.MemberStatusActive}, nil
		})

		r := gin.New()
		r.POST("/v1/members", h.CreateMember)

		body := `{"first_name":"Anna","last_name":"Puig","email":"anna@example.org","join_date":"2023-09-01"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/members", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["full_name"] != "Anna Puig" {
			t.Fatalf("unexpected response %v", resp)
		}
	})

	t.Run("email conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMemberUseCase(ctrl)
		h := NewMemberHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Member{}, entities.Conflict("member", "", "email", "already registered"))

		r := gin.New()
		r.POST("/v1/members", h.CreateMember)

		req := httptest.NewRequest(http.MethodPost, "/v1/members", bytes.NewBufferString(`{"first_name":"Anna","email":"anna@example.org"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMemberHandler_ListMembers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMemberUseCase(ctrl)
		h := NewMemberHandler(uc, nil)

		uc.EXPECT().List(gomock.Any(), entities.MemberFilter{Status: entities.MemberStatusPending, Search: "puig"}).
			Return([]entities.Member{{ID: "m1"}}, nil)

		r := gin.New()
		r.GET("/v1/members", h.ListMembers)

		req := httptest.NewRequest(http.MethodGet, "/v1/members?status=pending&search=puig", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Count int `json:"count"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Count != 1 {
			t.Fatalf("expected count 1, got %d", resp.Count)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMemberUseCase(ctrl)
		h := NewMemberHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/members", h.ListMembers)

		req := httptest.NewRequest(http.MethodGet, "/v1/members?status=baixa", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMemberHandler_SyncDirectory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		res  usecase.SyncResult
		err  error
		code int
	}{
		{"success", usecase.SyncResult{Fetched: 3, Created: 2, Updated: 1}, nil, http.StatusOK},
		{"not configured", usecase.SyncResult{}, usecase.ErrDirectoryNotConfigured, http.StatusServiceUnavailable},
		{"invalid payload", usecase.SyncResult{}, entities.InvalidDocument("count", "mismatch"), http.StatusUnprocessableEntity},
		{"transport", usecase.SyncResult{}, errors.New("dial tcp"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIMemberUseCase(ctrl)
			h := NewMemberHandler(uc, nil)

			uc.EXPECT().SyncDirectory(gomock.Any()).Return(tc.res, tc.err)

			r := gin.New()
			r.POST("/v1/members/sync", h.SyncDirectory)

			req := httptest.NewRequest(http.MethodPost, "/v1/members/sync", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestMemberHandler_MemberStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns counts and recent members", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMemberUseCase(ctrl)
		h := NewMemberHandler(uc, nil)

		joined := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Stats(gomock.Any(), 5).Return(usecase.MemberStats{
			Total: 4, Active: 2, Inactive: 1, Pending: 1,
			Recent: []entities.Member{{ID: "m-1", FirstName: "Pere", Status: entities.MemberStatusPending, JoinDate: joined}},
		}, nil)

		r := gin.New()
		r.GET("/v1/members/stats", h.MemberStats)

		req := httptest.NewRequest(http.MethodGet, "/v1/members/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Total    int `json:"total"`
			Active   int `json:"active"`
			Inactive int `json:"inactive"`
			Pending  int `json:"pending"`
			Recent   []struct {
				ID       string `json:"id"`
				JoinDate string `json:"join_date"`
			} `json:"recent"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Total != 4 || body.Active != 2 || body.Inactive != 1 || body.Pending != 1 {
			t.Fatalf("unexpected counts %+v", body)
		}
		if len(body.Recent) != 1 || body.Recent[0].ID != "m-1" || body.Recent[0].JoinDate != "2024-02-01" {
			t.Fatalf("unexpected recent %+v", body.Recent)
		}
	})

	cases := []struct {
		name   string
		query  string
		recent int
		code   int
	}{
		{"explicit recent", "?recent=10", 10, http.StatusOK},
		{"counts only", "?recent=0", 0, http.StatusOK},
		{"negative", "?recent=-1", 0, http.StatusBadRequest},
		{"above limit", "?recent=51", 0, http.StatusBadRequest},
		{"not a number", "?recent=all", 0, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIMemberUseCase(ctrl)
			h := NewMemberHandler(uc, nil)
			if tc.code == http.StatusOK {
				uc.EXPECT().Stats(gomock.Any(), tc.recent).Return(usecase.MemberStats{}, nil)
			}

			r := gin.New()
			r.GET("/v1/members/stats", h.MemberStats)

			req := httptest.NewRequest(http.MethodGet, "/v1/members/stats"+tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("use case failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMemberUseCase(ctrl)
		h := NewMemberHandler(uc, nil)
		uc.EXPECT().Stats(gomock.Any(), 5).Return(usecase.MemberStats{}, errors.New("db"))

		r := gin.New()
		r.GET("/v1/members/stats", h.MemberStats)

		req := httptest.NewRequest(http.MethodGet, "/v1/members/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
