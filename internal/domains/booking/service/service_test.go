package service_test

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"hotel/infras/metrics"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	bookingRepository "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/booking/service"
	clientMocks "hotel/internal/domains/client/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/daterange"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	eventMocks "hotel/shared/event/mocks"
	"hotel/shared/failure"
	txMocks "hotel/shared/repository/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc       service.Booking
	repo      *bookingMocks.MockBooking
	rooms     *roomMocks.MockRoom
	clients   *clientMocks.MockClient
	publisher *eventMocks.MockPublisher
	metrics   *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		clients:   clientMocks.NewMockClient(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		metrics:   metrics.New(prometheus.NewRegistry()),
	}

	tx := txMocks.NewMockTransaction(ctrl)
	tx.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	f.svc = service.New(f.repo, f.rooms, f.clients, tx, otelMocks.NewOtel(), f.metrics, f.publisher)

	return f
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

// occupied answers the overlap query the way the database would for the given active stays.
func occupied(stays ...daterange.Range) func(context.Context, *sqlx.Tx, gDto.FilterGroup) (bool, error) {
	return func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (bool, error) {
		_, args := filter.GetWhereClause()

		in, _ := args["stay_in"].(time.Time)
		out, _ := args["stay_out"].(time.Time)

		for _, stay := range stays {
			if stay.In.Before(out) && stay.Out.After(in) {
				return true, nil
			}
		}

		return false, nil
	}
}

func (f fixture) roomReady(maxGuests int) {
	f.rooms.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(roomModel.Room{ID: "r1", IsActive: true, MaxGuests: maxGuests}, nil)
}

func TestBookingService_Create(t *testing.T) {
	existing := daterange.Range{In: day("2026-03-01"), Out: day("2026-03-05")}

	tests := []struct {
		name     string
		dateIn   string
		dateOut  string
		wantCode int
	}{
		{
			name:    "checkout day of an existing stay is free",
			dateIn:  "2026-03-05",
			dateOut: "2026-03-07",
		},
		{
			name:    "stay ending on an existing check-in is free",
			dateIn:  "2026-02-27",
			dateOut: "2026-03-01",
		},
		{
			name:     "overlapping last night",
			dateIn:   "2026-03-04",
			dateOut:  "2026-03-06",
			wantCode: http.StatusConflict,
		},
		{
			name:     "enclosing an existing stay",
			dateIn:   "2026-02-28",
			dateOut:  "2026-03-10",
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.roomReady(2)
			f.clients.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(occupied(existing))

			if tt.wantCode == 0 {
				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.Equal(t, model.StatusActive, booking.Status)
						assert.Equal(t, day(tt.dateIn), booking.DateIn)

						return nil
					})
				f.publisher.EXPECT().Publish(gomock.Any(), event.BookingCreated, gomock.Any(), gomock.Any())
			}

			res, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
				RoomID:         "r1",
				ClientID:       "c1",
				DateIn:         tt.dateIn,
				DateOut:        tt.dateOut,
				NumberOfGuests: 2,
			})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.BookingsRejected.WithLabelValues(metrics.RejectReasonUnavailable)), 0)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.dateIn, res.DateIn)
			assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.BookingsCreated), 0)
		})
	}
}

func TestBookingService_CreateRejectsBeforeLocking(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
		RoomID:         "r1",
		ClientID:       "c1",
		DateIn:         "2026-03-05",
		DateOut:        "2026-03-05",
		NumberOfGuests: 1,
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.BookingsRejected.WithLabelValues(metrics.RejectReasonInvalid)), 0)
}

func TestBookingService_CreateOverCapacity(t *testing.T) {
	f := newFixture(t)

	f.roomReady(2)

	_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
		RoomID:         "r1",
		ClientID:       "c1",
		DateIn:         "2026-03-01",
		DateOut:        "2026-03-02",
		NumberOfGuests: 3,
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.BookingsRejected.WithLabelValues(metrics.RejectReasonCapacity)), 0)
}

func TestBookingService_CreateMissingReferences(t *testing.T) {
	t.Run("room", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID: "r1", ClientID: "c1", DateIn: "2026-03-01", DateOut: "2026-03-02", NumberOfGuests: 1,
		})

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("client", func(t *testing.T) {
		f := newFixture(t)

		f.roomReady(1)
		f.clients.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID: "r1", ClientID: "c1", DateIn: "2026-03-01", DateOut: "2026-03-02", NumberOfGuests: 1,
		})

		assert.True(t, failure.IsNotFound(err))
	})
}

func TestBookingService_CreateLosesRaceToConstraint(t *testing.T) {
	f := newFixture(t)

	f.roomReady(1)
	f.clients.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&pq.Error{Code: "23P01", Constraint: model.ConstraintNoOverlap})

	_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
		RoomID: "r1", ClientID: "c1", DateIn: "2026-03-01", DateOut: "2026-03-02", NumberOfGuests: 1,
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestBookingService_CancelTwice(t *testing.T) {
	f := newFixture(t)

	status := model.StatusActive

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
			if status != model.StatusActive {
				return 0, nil
			}

			status = model.Status(fields[model.FieldStatus].(string))

			return 1, nil
		}).
		Times(2)
	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (model.Booking, error) {
			return model.Booking{ID: "b1", Status: status}, nil
		})
	f.publisher.EXPECT().Publish(gomock.Any(), event.BookingCanceled, "b1", gomock.Any()).Times(1)

	first, err := f.svc.Cancel(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, first.Canceled)

	second, err := f.svc.Cancel(context.Background(), "b1")
	require.NoError(t, err)
	assert.False(t, second.Canceled)
	assert.Equal(t, model.StatusCanceled, second.Status)

	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.BookingsCanceled), 0)
}

func TestBookingService_CancelUnknown(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := f.svc.Cancel(context.Background(), "missing")
	assert.True(t, failure.IsNotFound(err))
}

// A path id that is not a uuid is rejected by postgres with 22P02 and must read as an unknown booking.
func TestBookingService_CancelMalformedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	otl := otelMocks.NewOtel()
	repo := bookingRepository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, otl)

	invalidUUID := &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "nope"`}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET")).WillReturnError(invalidUUID)
	mock.ExpectPrepare(regexp.QuoteMeta("FROM bookings")).ExpectQuery().WillReturnError(invalidUUID)

	ctrl := gomock.NewController(t)
	svc := service.New(
		repo,
		roomMocks.NewMockRoom(ctrl),
		clientMocks.NewMockClient(ctrl),
		txMocks.NewMockTransaction(ctrl),
		otl,
		metrics.New(prometheus.NewRegistry()),
		eventMocks.NewMockPublisher(ctrl),
	)

	res, err := svc.Cancel(context.Background(), "nope")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.False(t, res.Canceled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingService_IsRoomAvailable(t *testing.T) {
	stay := daterange.Range{In: day("2026-03-01"), Out: day("2026-03-03")}

	t.Run("free", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		available, err := f.svc.IsRoomAvailable(context.Background(), "r1", stay)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("query failure reads as unavailable", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection reset"))

		available, err := f.svc.IsRoomAvailable(context.Background(), "r1", stay)
		require.Error(t, err)
		assert.False(t, available)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.IsRoomAvailable(context.Background(), "r1", stay)
		assert.True(t, failure.IsNotFound(err))
	})
}
