//go:build unit

package api_test

import (
	"net/http"
	"testing"

	domorder "shopfront/internal/domain/order"
	"shopfront/internal/handler/api"
	resdto "shopfront/internal/handler/dto/response"
	"shopfront/internal/infra/backend"
	"shopfront/internal/usecase/commands"
	"shopfront/internal/usecase/queries"
	"shopfront/tests/common/builder"
	"shopfront/tests/common/httptest"
	"shopfront/tests/common/testutil"
	commandsmock "shopfront/tests/mock/commands"
	queriesmock "shopfront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/orders", s.handler.Place)
	s.router.GET("/orders/me", s.handler.Mine)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestPlace
// ================================================================================

func (s *OrderHandlerTestSuite) TestPlace() {
	url := "/orders"

	b := builder.NewOrderBuilder()
	reqBody := b.BuildPlaceRequestDTO()
	expectedResult := b.BuildPlaceResult()

	s.Run("success: returns 201 Created with the pending receipt", func() {
		s.mockCommands.EXPECT().
			PlaceOrder(gomock.Any(), b.ProductID, b.Quantity).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.PlaceOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.OrderID)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: product_id", mutate: testutil.Field("product_id", nil)},
			{name: "missing field: quantity", mutate: testutil.Field("quantity", nil)},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 with the backend's refusal reason verbatim", func() {
		rejection := &backend.RejectionError{StatusCode: http.StatusBadRequest, Reason: "Insufficient stock"}
		s.mockCommands.EXPECT().
			PlaceOrder(gomock.Any(), b.ProductID, b.Quantity).
			Return(nil, rejection).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Insufficient stock")
	})

	s.Run("error: 401 when the session has expired", func() {
		s.mockCommands.EXPECT().
			PlaceOrder(gomock.Any(), b.ProductID, b.Quantity).
			Return(nil, commands.ErrSessionExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Session expired")
	})

	s.Run("error: 503 when no usable response came back", func() {
		s.mockCommands.EXPECT().
			PlaceOrder(gomock.Any(), b.ProductID, b.Quantity).
			Return(nil, commands.ErrConnectionFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Connection error")
	})
}

// ================================================================================
// TestMine
// ================================================================================

func (s *OrderHandlerTestSuite) TestMine() {
	url := "/orders/me"

	s.Run("success: returns orders split by status", func() {
		approved := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) {
				b.ID = "order-002"
				b.Status = domorder.StatusApproved
			}).
			BuildView()
		pending := builder.NewOrderBuilder().BuildView()
		view := &queries.OrdersView{
			Approved: []queries.OrderView{approved},
			Pending:  []queries.OrderView{pending},
		}
		s.mockQueries.EXPECT().MyOrders(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Approved, 1)
		s.Len(body.Pending, 1)
		s.Equal("order-002", body.Approved[0].ID)
		s.Equal("approved", body.Approved[0].Status)
	})

	s.Run("error: 401 when the credential was rejected", func() {
		s.mockQueries.EXPECT().MyOrders(gomock.Any()).
			Return(nil, backend.ErrUnauthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Session expired")
	})

	s.Run("error: 503 when the backend is unreachable", func() {
		s.mockQueries.EXPECT().MyOrders(gomock.Any()).
			Return(nil, backend.ErrUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Connection error")
	})
}
