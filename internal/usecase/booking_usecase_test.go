package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pandit_booking/internal/adapter/persistence/memory"
	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase/interfaces"
	mock_interfaces "pandit_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var scheduled = time.Date(2026, 11, 2, 5, 30, 0, 0, time.UTC)

func TestBookingUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("validations", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil)
		if _, err := uc.Create(ctx, Principal{}, CreateBookingInput{PujaTypeID: "pt1", ScheduledAt: scheduled}); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
		if _, err := uc.Create(ctx, owner, CreateBookingInput{ScheduledAt: scheduled}); !errors.Is(err, ErrInvalidPujaTypeID) {
			t.Fatalf("expected ErrInvalidPujaTypeID, got %v", err)
		}
		if _, err := uc.Create(ctx, owner, CreateBookingInput{PujaTypeID: "pt1"}); !errors.Is(err, ErrInvalidScheduledAt) {
			t.Fatalf("expected ErrInvalidScheduledAt, got %v", err)
		}
	})

	t.Run("puja type not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pujas := mock_interfaces.NewMockIPujaTypeRepository(ctrl)
		uc := NewBookingUseCase(mock_interfaces.NewMockIBookingRepository(ctrl), pujas, mock_interfaces.NewMockIPanditRepository(ctrl))

		pujas.EXPECT().GetByID(gomock.Any(), "pt1").Return(entities.PujaType{}, nil)

		_, err := uc.Create(ctx, owner, CreateBookingInput{PujaTypeID: "pt1", ScheduledAt: scheduled})
		if !errors.Is(err, ErrPujaTypeNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrPujaTypeNotFound, got %v", err)
		}
	})

	t.Run("pandit not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pujas := mock_interfaces.NewMockIPujaTypeRepository(ctrl)
		pandits := mock_interfaces.NewMockIPanditRepository(ctrl)
		uc := NewBookingUseCase(mock_interfaces.NewMockIBookingRepository(ctrl), pujas, pandits)

		pujas.EXPECT().GetByID(gomock.Any(), "pt1").Return(entities.PujaType{ID: "pt1", DefaultPrice: 1100}, nil)
		pandits.EXPECT().GetByID(gomock.Any(), "pd1").Return(entities.Pandit{}, nil)

		_, err := uc.Create(ctx, owner, CreateBookingInput{PujaTypeID: "pt1", PanditID: "pd1", ScheduledAt: scheduled})
		if !errors.Is(err, ErrPanditNotFound) {
			t.Fatalf("expected ErrPanditNotFound, got %v", err)
		}
	})

	t.Run("pandit not approved persists nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		pujas := mock_interfaces.NewMockIPujaTypeRepository(ctrl)
		pandits := mock_interfaces.NewMockIPanditRepository(ctrl)
		uc := NewBookingUseCase(bookings, pujas, pandits)

		pujas.EXPECT().GetByID(gomock.Any(), "pt1").Return(entities.PujaType{ID: "pt1", DefaultPrice: 1100}, nil)
		pandits.EXPECT().GetByID(gomock.Any(), "pd1").Return(entities.Pandit{ID: "pd1", Approved: false}, nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Create(ctx, owner, CreateBookingInput{PujaTypeID: "pt1", PanditID: "pd1", ScheduledAt: scheduled})
		if !errors.Is(err, ErrPanditNotApproved) || !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrPanditNotApproved, got %v", err)
		}
	})

	t.Run("success copies default price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		pujas := mock_interfaces.NewMockIPujaTypeRepository(ctrl)
		pandits := mock_interfaces.NewMockIPanditRepository(ctrl)
		uc := NewBookingUseCase(bookings, pujas, pandits)

		pujas.EXPECT().GetByID(gomock.Any(), "pt1").Return(entities.PujaType{ID: "pt1", DefaultPrice: 5100}, nil)
		pandits.EXPECT().GetByID(gomock.Any(), "pd1").Return(entities.Pandit{ID: "pd1", Approved: true}, nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			return b, nil
		})

		b, err := uc.Create(ctx, owner, CreateBookingInput{PujaTypeID: "pt1", PanditID: " pd1 ", ScheduledAt: scheduled, Address: " Varanasi "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID == "" || b.UserID != "u1" || b.PanditID != "pd1" || b.Price != 5100 || b.Status != entities.BookingStatusPending || b.Address != "Varanasi" {
			t.Fatalf("unexpected booking: %+v", b)
		}
	})
}

func TestBookingUseCase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(bookings, nil, nil)

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{}, nil)

		if _, err := uc.Cancel(ctx, "b1", owner); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("only the owner may cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(bookings, nil, nil)

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Status: entities.BookingStatusPending}, nil).Times(2)

		if _, err := uc.Cancel(ctx, "b1", other); !errors.Is(err, ErrBookingNotOwned) {
			t.Fatalf("expected ErrBookingNotOwned, got %v", err)
		}
		if _, err := uc.Cancel(ctx, "b1", admin); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden for admin, got %v", err)
		}
	})

	t.Run("terminal statuses are rejected without writes", func(t *testing.T) {
		for _, status := range []entities.BookingStatus{entities.BookingStatusCompleted, entities.BookingStatusCancelled} {
			store := memory.NewStore()
			if _, err := store.Bookings().Create(ctx, entities.Booking{ID: "b1", UserID: "u1", Status: status}); err != nil {
				t.Fatalf("seed: %v", err)
			}
			uc := NewBookingUseCase(store.Bookings(), store.PujaTypes(), store.Pandits())

			if _, err := uc.Cancel(ctx, "b1", owner); !errors.Is(err, ErrBookingNotCancellable) || !errors.Is(err, ErrInvalidState) {
				t.Fatalf("status %s: expected ErrBookingNotCancellable, got %v", status, err)
			}
			if b, _ := store.Bookings().GetByID(ctx, "b1"); b.Status != status {
				t.Fatalf("status changed to %s", b.Status)
			}
		}
	})

	t.Run("lost race against completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(bookings, nil, nil)

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Status: entities.BookingStatusConfirmed}, nil)
		bookings.EXPECT().UpdateStatus(gomock.Any(), "b1", entities.BookingStatusCancelled, gomock.Any()).Return(entities.Booking{}, interfaces.ErrConditionFailed)

		if _, err := uc.Cancel(ctx, "b1", owner); !errors.Is(err, ErrBookingNotCancellable) {
			t.Fatalf("expected ErrBookingNotCancellable, got %v", err)
		}
	})

	t.Run("pending and confirmed bookings cancel", func(t *testing.T) {
		for _, status := range []entities.BookingStatus{entities.BookingStatusPending, entities.BookingStatusConfirmed} {
			store := memory.NewStore()
			if _, err := store.Bookings().Create(ctx, entities.Booking{ID: "b1", UserID: "u1", Status: status}); err != nil {
				t.Fatalf("seed: %v", err)
			}
			uc := NewBookingUseCase(store.Bookings(), store.PujaTypes(), store.Pandits())

			b, err := uc.Cancel(ctx, "b1", owner)
			if err != nil || b.Status != entities.BookingStatusCancelled {
				t.Fatalf("status %s: got %+v err=%v", status, b, err)
			}
			if _, err := uc.Cancel(ctx, "b1", owner); !errors.Is(err, ErrBookingNotCancellable) {
				t.Fatalf("second cancel: expected ErrBookingNotCancellable, got %v", err)
			}
		}
	})
}

func TestBookingUseCase_Update(t *testing.T) {
	ctx := context.Background()
	pandit := Principal{UserID: "pu1", Role: entities.UserRolePandit}

	setup := func(t *testing.T, status entities.BookingStatus) (*memory.Store, *BookingUseCase) {
		t.Helper()
		store := memory.NewStore()
		must := func(err error) {
			if err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		_, err := store.Pandits().Create(ctx, entities.Pandit{ID: "pd1", UserID: "pu1", Approved: true})
		must(err)
		_, err = store.Pandits().Create(ctx, entities.Pandit{ID: "pd2", UserID: "pu2", Approved: true})
		must(err)
		_, err = store.Pandits().Create(ctx, entities.Pandit{ID: "pd3", UserID: "pu3", Approved: false})
		must(err)
		_, err = store.Bookings().Create(ctx, entities.Booking{ID: "b1", UserID: "u1", PanditID: "pd1", Price: 2100, Address: "Pune", Status: status, ScheduledAt: scheduled})
		must(err)
		return store, NewBookingUseCase(store.Bookings(), store.PujaTypes(), store.Pandits())
	}

	t.Run("owner without role is forbidden", func(t *testing.T) {
		_, uc := setup(t, entities.BookingStatusConfirmed)
		url := "https://stream"
		if _, err := uc.Update(ctx, "b1", owner, entities.BookingUpdate{StreamURL: &url}); !errors.Is(err, ErrBookingUpdateForbidden) {
			t.Fatalf("expected ErrBookingUpdateForbidden, got %v", err)
		}
	})

	t.Run("unassigned pandit is forbidden", func(t *testing.T) {
		_, uc := setup(t, entities.BookingStatusConfirmed)
		url := "https://stream"
		stranger := Principal{UserID: "pu2", Role: entities.UserRolePandit}
		if _, err := uc.Update(ctx, "b1", stranger, entities.BookingUpdate{StreamURL: &url}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("assigned pandit merges only given fields", func(t *testing.T) {
		store, uc := setup(t, entities.BookingStatusConfirmed)
		url := "https://stream/live"
		completed := entities.BookingStatusCompleted
		b, err := uc.Update(ctx, "b1", pandit, entities.BookingUpdate{StreamURL: &url, Status: &completed})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.StreamURL != url || b.Status != entities.BookingStatusCompleted {
			t.Fatalf("fields not applied: %+v", b)
		}
		stored, _ := store.Bookings().GetByID(ctx, "b1")
		if stored.Address != "Pune" || stored.Price != 2100 || stored.PanditID != "pd1" || !stored.ScheduledAt.Equal(scheduled) {
			t.Fatalf("untouched fields changed: %+v", stored)
		}
	})

	t.Run("status rules", func(t *testing.T) {
		cases := []struct {
			name string
			from entities.BookingStatus
			to   entities.BookingStatus
			want error
		}{
			{"unknown status", entities.BookingStatusPending, "paid", ErrInvalidBookingStatus},
			{"confirm is reserved for payments", entities.BookingStatusPending, entities.BookingStatusConfirmed, ErrBookingInvalidTransition},
			{"pending cannot complete", entities.BookingStatusPending, entities.BookingStatusCompleted, ErrBookingInvalidTransition},
			{"cancelled is terminal", entities.BookingStatusCancelled, entities.BookingStatusPending, ErrBookingInvalidTransition},
			{"confirmed can be cancelled", entities.BookingStatusConfirmed, entities.BookingStatusCancelled, nil},
			{"same status is allowed", entities.BookingStatusConfirmed, entities.BookingStatusConfirmed, nil},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, uc := setup(t, tc.from)
				to := tc.to
				_, err := uc.Update(ctx, "b1", admin, entities.BookingUpdate{Status: &to})
				if tc.want == nil && err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tc.want != nil && !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("reassignment checks the new pandit", func(t *testing.T) {
		_, uc := setup(t, entities.BookingStatusPending)
		unapproved := "pd3"
		if _, err := uc.Update(ctx, "b1", admin, entities.BookingUpdate{PanditID: &unapproved}); !errors.Is(err, ErrPanditNotApproved) {
			t.Fatalf("expected ErrPanditNotApproved, got %v", err)
		}
		missing := "nope"
		if _, err := uc.Update(ctx, "b1", admin, entities.BookingUpdate{PanditID: &missing}); !errors.Is(err, ErrPanditNotFound) {
			t.Fatalf("expected ErrPanditNotFound, got %v", err)
		}
		next := "pd2"
		b, err := uc.Update(ctx, "b1", admin, entities.BookingUpdate{PanditID: &next})
		if err != nil || b.PanditID != "pd2" {
			t.Fatalf("reassign: %+v err=%v", b, err)
		}
	})

	t.Run("empty update", func(t *testing.T) {
		_, uc := setup(t, entities.BookingStatusPending)
		if _, err := uc.Update(ctx, "b1", admin, entities.BookingUpdate{}); !errors.Is(err, ErrEmptyBookingUpdate) {
			t.Fatalf("expected ErrEmptyBookingUpdate, got %v", err)
		}
	})

	t.Run("concurrent status change is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(bookings, nil, nil)

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Status: entities.BookingStatusConfirmed}, nil)
		bookings.EXPECT().Update(gomock.Any(), gomock.Any(), entities.BookingStatusConfirmed).Return(entities.Booking{}, interfaces.ErrConditionFailed)

		url := "https://stream"
		if _, err := uc.Update(ctx, "b1", admin, entities.BookingUpdate{StreamURL: &url}); !errors.Is(err, ErrBookingStateChanged) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrBookingStateChanged, got %v", err)
		}
	})
}

func TestBookingUseCase_Reads(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	if _, err := store.Pandits().Create(ctx, entities.Pandit{ID: "pd1", UserID: "pu1", Approved: true}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	for _, b := range []entities.Booking{
		{ID: "b1", UserID: "u1", PanditID: "pd1", Status: entities.BookingStatusPending, CreatedAt: scheduled},
		{ID: "b2", UserID: "u2", Status: entities.BookingStatusPending, CreatedAt: scheduled.Add(time.Minute)},
	} {
		if _, err := store.Bookings().Create(ctx, b); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	uc := NewBookingUseCase(store.Bookings(), store.PujaTypes(), store.Pandits())

	if _, err := uc.Get(ctx, "b1", other); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if b, err := uc.Get(ctx, "b1", admin); err != nil || b.ID != "b1" {
		t.Fatalf("admin get: %+v err=%v", b, err)
	}
	if _, err := uc.Get(ctx, "missing", owner); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}

	mine, err := uc.ListMine(ctx, owner)
	if err != nil || len(mine) != 1 || mine[0].ID != "b1" {
		t.Fatalf("list mine: %+v err=%v", mine, err)
	}

	if _, err := uc.ListAll(ctx, owner); !errors.Is(err, ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired, got %v", err)
	}
	all, err := uc.ListAll(ctx, admin)
	if err != nil || len(all) != 2 {
		t.Fatalf("list all: %+v err=%v", all, err)
	}

	if _, err := uc.ListForPandit(ctx, "pd1", owner); !errors.Is(err, ErrPanditProfileNotOwned) {
		t.Fatalf("expected ErrPanditProfileNotOwned, got %v", err)
	}
	forPandit, err := uc.ListForPandit(ctx, "pd1", Principal{UserID: "pu1", Role: entities.UserRolePandit})
	if err != nil || len(forPandit) != 1 {
		t.Fatalf("list for pandit: %+v err=%v", forPandit, err)
	}
}
