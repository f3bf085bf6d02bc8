package service_test

import (
	"context"
	"net/http"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	clientMocks "hotel/internal/domains/client/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	roomOrderMocks "hotel/internal/domains/roomorder/mocks"
	"hotel/internal/domains/roomorder/model"
	"hotel/internal/domains/roomorder/model/dto"
	"hotel/internal/domains/roomorder/service"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	txMocks "hotel/shared/repository/mocks"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	roomID  = "6f1f2f8e-0d7a-4a57-9d1e-1a1f6f4b3c01"
	payerID = "6f1f2f8e-0d7a-4a57-9d1e-1a1f6f4b3c02"
	guestA  = "6f1f2f8e-0d7a-4a57-9d1e-1a1f6f4b3c03"
	guestB  = "6f1f2f8e-0d7a-4a57-9d1e-1a1f6f4b3c04"
)

type fixture struct {
	svc     service.RoomOrder
	repo    *roomOrderMocks.MockRoomOrder
	rooms   *roomMocks.MockRoom
	clients *clientMocks.MockClient
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	tx := txMocks.NewMockTransaction(ctrl)
	tx.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	f := fixture{
		repo:    roomOrderMocks.NewMockRoomOrder(ctrl),
		rooms:   roomMocks.NewMockRoom(ctrl),
		clients: clientMocks.NewMockClient(ctrl),
	}
	f.svc = service.New(f.repo, f.rooms, f.clients, tx, otelMocks.NewOtel())

	return f
}

func request(participants ...string) dto.CreateRoomOrderRequest {
	return dto.CreateRoomOrderRequest{
		RoomID:         roomID,
		PayingClientID: payerID,
		DateIn:         "2026-05-01",
		DateOut:        "2026-05-04",
		ParticipantIDs: participants,
	}
}

func TestRoomOrderService_Create(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.clients.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	f.clients.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil)

	var orderID string

	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, order model.RoomOrder) error {
			orderID = order.ID

			return nil
		})
	f.repo.EXPECT().
		InsertParticipantsTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, participants []model.Participant) error {
			require.Len(t, participants, 2)

			for _, p := range participants {
				assert.Equal(t, orderID, p.RoomOrderID)
			}

			assert.Equal(t, guestA, participants[0].ClientID)
			assert.Equal(t, guestB, participants[1].ClientID)

			return nil
		})

	res, err := f.svc.Create(context.Background(), request(guestA, guestB))
	require.NoError(t, err)

	assert.Equal(t, orderID, res.ID)
	assert.Equal(t, []string{guestA, guestB}, res.ParticipantIDs)
	assert.Equal(t, "2026-05-04", res.DateOut)
}

func TestRoomOrderService_CreateRejected(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateRoomOrderRequest
		setup    func(f fixture)
		wantCode int
	}{
		{
			name: "reversed dates",
			req: func() dto.CreateRoomOrderRequest {
				r := request()
				r.DateIn, r.DateOut = r.DateOut, r.DateIn

				return r
			}(),
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "payer among participants",
			req:      request(guestA, payerID),
			setup:    func(fixture) {},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown room",
			req:  request(),
			setup: func(f fixture) {
				f.rooms.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown participant",
			req:  request(guestA, guestB),
			setup: func(f fixture) {
				f.rooms.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.clients.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.clients.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := f.svc.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestRoomOrderService_AddParticipant(t *testing.T) {
	order := model.RoomOrder{ID: "o1", RoomID: roomID, PayingClientID: payerID}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(order, nil)
		f.clients.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().InsertParticipantsTx(gomock.Any(), gomock.Any(), []model.Participant{{RoomOrderID: "o1", ClientID: guestA}}).Return(nil)
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (model.RoomOrder, error) {
				return order, nil
			})
		f.repo.EXPECT().GetParticipantIDs(gomock.Any(), "o1").Return([]string{guestA}, nil)

		res, err := f.svc.AddParticipant(context.Background(), dto.AddParticipantRequest{ClientID: guestA}, "o1")
		require.NoError(t, err)
		assert.Equal(t, []string{guestA}, res.ParticipantIDs)
	})

	t.Run("payer", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(order, nil)

		_, err := f.svc.AddParticipant(context.Background(), dto.AddParticipantRequest{ClientID: payerID}, "o1")
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
	})

	t.Run("already participating", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(order, nil)
		f.clients.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().
			InsertParticipantsTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505", Constraint: model.ConstraintParticipantPrimaryKey})

		_, err := f.svc.AddParticipant(context.Background(), dto.AddParticipantRequest{ClientID: guestA}, "o1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.RoomOrder{}, nil)

		_, err := f.svc.AddParticipant(context.Background(), dto.AddParticipantRequest{ClientID: guestA}, "o1")
		assert.True(t, failure.IsNotFound(err))
	})
}
