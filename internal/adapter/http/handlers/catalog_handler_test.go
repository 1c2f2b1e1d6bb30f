package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"pandit_booking/internal/adapter/http/handlers/mocks"
	"pandit_booking/internal/adapter/http/middleware"
	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestPanditHandler_ListApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPanditUseCase(ctrl)
	r := newRouter()
	r.GET("/v1/pandits", NewPanditHandler(uc).ListApproved)

	uc.EXPECT().ListApproved(gomock.Any()).Return([]entities.Pandit{{ID: "pd1", Approved: true}}, nil)

	w := do(r, http.MethodGet, "/v1/pandits", "", ``)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPanditHandler_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPanditUseCase(ctrl)
	r := newRouter()
	authed(r).POST("/v1/pandits/apply", NewPanditHandler(uc).Apply)

	t.Run("city and state are required", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/pandits/apply", token(t, "u1", entities.UserRoleUser), `{"bio":"Vedic"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("profile fields reach the use case", func(t *testing.T) {
		uc.EXPECT().Apply(gomock.Any(), usecase.Principal{UserID: "u1", Role: entities.UserRoleUser}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ usecase.Principal, in usecase.PanditApplication) (entities.Pandit, error) {
				if in.City != "Varanasi" || in.State != "UP" || in.PhotoURL != "https://img.example/p.png" || in.Bio != "Vedic" {
					t.Fatalf("unexpected application %+v", in)
				}
				return entities.Pandit{ID: "pd1", UserID: "u1", City: in.City, State: in.State, PhotoURL: in.PhotoURL, Bio: in.Bio}, nil
			})

		w := do(r, http.MethodPost, "/v1/pandits/apply", token(t, "u1", entities.UserRoleUser),
			`{"city":"Varanasi","state":"UP","photo_url":"https://img.example/p.png","bio":"Vedic"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if body := decode(t, w); body["city"] != "Varanasi" || body["state"] != "UP" || body["photo_url"] != "https://img.example/p.png" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("second profile conflicts", func(t *testing.T) {
		uc.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Pandit{}, usecase.ErrPanditProfileExists)

		w := do(r, http.MethodPost, "/v1/pandits/apply", token(t, "u1", entities.UserRoleUser), `{"city":"Varanasi","state":"UP"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPanditHandler_SetApproval(t *testing.T) {
	t.Run("approved is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPanditUseCase(ctrl)
		r := newRouter()
		authed(r).PATCH("/v1/admin/pandits/:id/approve", NewPanditHandler(uc).SetApproval)

		w := do(r, http.MethodPatch, "/v1/admin/pandits/pd1/approve", token(t, "a1", entities.UserRoleAdmin), `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("revocation is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPanditUseCase(ctrl)
		r := newRouter()
		authed(r).PATCH("/v1/admin/pandits/:id/approve", NewPanditHandler(uc).SetApproval)

		uc.EXPECT().SetApproval(gomock.Any(), "pd1", false, gomock.Any()).Return(entities.Pandit{ID: "pd1"}, nil)

		w := do(r, http.MethodPatch, "/v1/admin/pandits/pd1/approve", token(t, "a1", entities.UserRoleAdmin), `{"approved":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if body := decode(t, w); body["approved"] != false {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestPujaTypeHandler_AdminRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPujaTypeUseCase(ctrl)
	h := NewPujaTypeHandler(uc)
	r := newRouter()
	admin := authed(r).Group("/v1/admin", middleware.RequireRole(entities.UserRoleAdmin))
	admin.POST("/pujas", h.Create)

	t.Run("non admin is rejected before the use case", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/admin/pujas", token(t, "u1", entities.UserRoleUser), `{"name_local":"गृह प्रवेश","name_en":"Griha Pravesh"}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin creates", func(t *testing.T) {
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ usecase.Principal, p entities.PujaType) (entities.PujaType, error) {
				if p.NameLocal != "गृह प्रवेश" || p.NameEN != "Griha Pravesh" || p.Benefits != "Peace" || !p.IsVirtual {
					t.Fatalf("unexpected puja %+v", p)
				}
				p.ID = "pj1"
				return p, nil
			})

		w := do(r, http.MethodPost, "/v1/admin/pujas", token(t, "a1", entities.UserRoleAdmin),
			`{"name_local":"गृह प्रवेश","name_en":"Griha Pravesh","benefits":"Peace","is_virtual":true,"default_price":2100}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if body := decode(t, w); body["name_en"] != "Griha Pravesh" || body["is_virtual"] != true {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("both names are required", func(t *testing.T) {
		w := do(r, http.MethodPost, "/v1/admin/pujas", token(t, "a1", entities.UserRoleAdmin), `{"name_en":"Griha Pravesh"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPujaTypeHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPujaTypeUseCase(ctrl)
	r := newRouter()
	r.GET("/v1/pujas/:id", NewPujaTypeHandler(uc).Get)

	uc.EXPECT().Get(gomock.Any(), "missing").Return(entities.PujaType{}, usecase.ErrPujaTypeNotFound)

	if w := do(r, http.MethodGet, "/v1/pujas/missing", "", ``); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestConsultationHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConsultationUseCase(ctrl)
	r := newRouter()
	authed(r).POST("/v1/consultations", NewConsultationHandler(uc).Create)

	uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Principal, in usecase.CreateConsultationInput) (entities.Consultation, error) {
			if !in.ConsultationDate.Equal(time.Date(2026, 11, 2, 10, 0, 0, 0, time.UTC)) || in.Notes != "muhurat" {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.Consultation{}, usecase.ErrPanditUnavailable
		})

	if w := do(r, http.MethodPost, "/v1/consultations", token(t, "u1", entities.UserRoleUser), `{"pandit_id":"pd1","price":501}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without consultation_date, got %d", w.Code)
	}
	w := do(r, http.MethodPost, "/v1/consultations", token(t, "u1", entities.UserRoleUser), `{"pandit_id":"pd1","price":501,"consultation_date":"2026-11-02T10:00:00Z","notes":"muhurat"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAdminUseCase(ctrl)
	r := newRouter()
	authed(r).GET("/v1/admin/stats", NewAdminHandler(uc).Stats)

	uc.EXPECT().Stats(gomock.Any(), usecase.Principal{UserID: "a1", Role: entities.UserRoleAdmin}).
		Return(usecase.DashboardStats{TotalUsers: 3, TotalRevenue: 4200}, nil)

	w := do(r, http.MethodGet, "/v1/admin/stats", token(t, "a1", entities.UserRoleAdmin), ``)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decode(t, w); body["total_users"] != float64(3) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestAdminHandler_CreateVirtualSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAdminUseCase(ctrl)
	r := newRouter()
	authed(r).POST("/v1/admin/virtual-sessions", NewAdminHandler(uc).CreateVirtualSession)

	start := time.Date(2026, 11, 5, 5, 0, 0, 0, time.UTC)
	uc.EXPECT().CreateVirtualSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.VirtualSession{ID: "vs1", Title: "Aarti", StreamURL: "https://live.example/aarti", ScheduledAt: start, PujaTypeID: "pt1", IsActive: true}, nil)

	w := do(r, http.MethodPost, "/v1/admin/virtual-sessions", token(t, "a1", entities.UserRoleAdmin),
		`{"title":"Aarti","stream_url":"https://live.example/aarti","scheduled_at":"2026-11-05T05:00:00Z","puja_type_id":"pt1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if body := decode(t, w); body["scheduled_at"] != "2026-11-05T05:00:00Z" || body["is_active"] != true || body["puja_type_id"] != "pt1" {
		t.Fatalf("unexpected body %v", body)
	}
}
