//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"order-fulfillment/internal/domain/device"
	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/domain/inventory"
	"order-fulfillment/internal/domain/pricing"
	"order-fulfillment/internal/domain/quote"
	"order-fulfillment/internal/infra"
	"order-fulfillment/internal/pkg/errs"
	"order-fulfillment/internal/usecase/queries"
	"order-fulfillment/tests/common/builder"
	queriesmock "order-fulfillment/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	orders      *queriesmock.MockOrderReadStore
	inventories *queriesmock.MockInventoryReadStore
	devices     *queriesmock.MockDeviceReadStore
	recorder    *queriesmock.MockQuoteRecorder
	useCase     queries.OrderQueries

	device  device.Device
	records []inventory.Record
}

func (s *OrderQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orders = queriesmock.NewMockOrderReadStore(s.ctrl)
	s.inventories = queriesmock.NewMockInventoryReadStore(s.ctrl)
	s.devices = queriesmock.NewMockDeviceReadStore(s.ctrl)
	s.recorder = queriesmock.NewMockQuoteRecorder(s.ctrl)

	quoter := queries.NewQuoter(s.inventories, s.devices, pricing.DefaultPolicy())
	s.useCase = queries.NewOrderQueries(s.orders, quoter, s.recorder)

	s.device = builder.NewDeviceBuilder().BuildDomain()
	s.records = builder.Warehouses(s.device.ID(), 500, builder.LosAngeles, builder.NewYork, builder.SaoPaulo, builder.Paris)
}

func (s *OrderQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}

func (s *OrderQueriesTestSuite) expectStock() {
	s.inventories.EXPECT().ListAvailable(gomock.Any()).Return(s.records, nil)
	s.devices.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{s.device.ID()}).Return([]device.Device{s.device}, nil)
}

func (s *OrderQueriesTestSuite) TestVerify_ValidQuote() {
	s.expectStock()
	s.recorder.EXPECT().RecordQuote(true)

	qt, err := s.useCase.Verify(context.Background(), queries.VerifyParams{
		DeviceCount: 100,
		Destination: geo.NewCoordinate(40, -73),
	})

	s.Require().NoError(err)
	s.True(qt.Valid)
	s.InDelta(12785.43, qt.FinalTotal, 1e-9)
	s.Require().Len(qt.Lines, 1)
	s.Equal("New York", qt.Lines[0].Location)
}

func (s *OrderQueriesTestSuite) TestVerify_ShippingThreshold() {
	s.expectStock()
	s.recorder.EXPECT().RecordQuote(false)

	qt, err := s.useCase.Verify(context.Background(), queries.VerifyParams{
		DeviceCount: 10,
		Destination: builder.Taipei,
	})

	s.Require().NoError(err)
	s.False(qt.Valid)
	s.Equal(quote.ReasonShippingThreshold, qt.Reason)
}

func (s *OrderQueriesTestSuite) TestVerify_NoInventorySkipsDeviceLookup() {
	s.inventories.EXPECT().ListAvailable(gomock.Any()).Return([]inventory.Record{}, nil)
	s.recorder.EXPECT().RecordQuote(false)

	qt, err := s.useCase.Verify(context.Background(), queries.VerifyParams{DeviceCount: 1, Destination: builder.Chicago})

	s.Require().NoError(err)
	s.Equal(quote.ReasonNoInventory, qt.Reason)
	s.Zero(qt.FinalTotal)
}

func (s *OrderQueriesTestSuite) TestVerify_MissingDevice() {
	s.inventories.EXPECT().ListAvailable(gomock.Any()).Return(s.records, nil)
	s.devices.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return([]device.Device{}, nil)

	_, err := s.useCase.Verify(context.Background(), queries.VerifyParams{DeviceCount: 1, Destination: builder.Chicago})

	s.Require().Error(err)
	s.True(errs.Is(err, queries.ErrDeviceNotFound))
}

func (s *OrderQueriesTestSuite) TestVerify_InventoryFailure() {
	dbErr := infra.WrapRepoErr("failed to list available inventories", errors.New("connection refused"))
	s.inventories.EXPECT().ListAvailable(gomock.Any()).Return(nil, dbErr)

	_, err := s.useCase.Verify(context.Background(), queries.VerifyParams{DeviceCount: 1, Destination: builder.Chicago})

	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDBFailure))
}

func (s *OrderQueriesTestSuite) TestGetByID() {
	id := uuid.New()

	s.Run("found", func() {
		s.orders.EXPECT().FindByID(gomock.Any(), id).Return(&queries.OrderView{ID: id}, nil)

		view, err := s.useCase.GetByID(context.Background(), id)
		s.Require().NoError(err)
		s.Equal(id, view.ID)
	})

	s.Run("not found maps to sentinel", func() {
		s.orders.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := s.useCase.GetByID(context.Background(), id)
		s.ErrorIs(err, queries.ErrOrderNotFound)
	})

	s.Run("other errors pass through", func() {
		dbErr := errors.New("connection refused")
		s.orders.EXPECT().FindByID(gomock.Any(), id).Return(nil, dbErr)

		_, err := s.useCase.GetByID(context.Background(), id)
		s.ErrorIs(err, dbErr)
	})
}

func (s *OrderQueriesTestSuite) TestList() {
	views := []*queries.OrderView{{ID: uuid.New()}, {ID: uuid.New()}}
	s.orders.EXPECT().FindAll(gomock.Any()).Return(views, nil)

	got, err := s.useCase.List(context.Background())
	s.Require().NoError(err)
	s.Equal(views, got)
}

func TestQuoter_DeduplicatesDeviceIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	inventories := queriesmock.NewMockInventoryReadStore(ctrl)
	devices := queriesmock.NewMockDeviceReadStore(ctrl)

	a := builder.NewDeviceBuilder().BuildDomain()
	b := builder.NewDeviceBuilder().WithUnitPrice(99).BuildDomain()
	records := []inventory.Record{
		builder.NewInventoryBuilder(a.ID()).At(builder.NewYork).BuildDomain(),
		builder.NewInventoryBuilder(b.ID()).At(builder.LosAngeles).BuildDomain(),
		builder.NewInventoryBuilder(a.ID()).At(builder.Paris).BuildDomain(),
	}

	inventories.EXPECT().ListAvailable(gomock.Any()).Return(records, nil)
	devices.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{a.ID(), b.ID()}).Return([]device.Device{a, b}, nil)

	qt, err := queries.NewQuoter(inventories, devices, pricing.DefaultPolicy()).Quote(context.Background(), 600, builder.Chicago)
	require.NoError(t, err)
	require.Len(t, qt.Lines, 2)
	assert.Equal(t, "New York", qt.Lines[0].Location)
	assert.InDelta(t, 100*99.0, qt.Lines[1].Price, 1e-9)
}
