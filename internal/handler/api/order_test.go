//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"ordersync/internal/handler/api"
	resdto "ordersync/internal/handler/dto/response"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/pkg/jwt"
	"ordersync/internal/usecase/commands"
	"ordersync/internal/usecase/queries"
	"ordersync/tests/common/builder"
	"ordersync/tests/common/httptest"
	commandsmock "ordersync/tests/mock/commands"
	queriesmock "ordersync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	userID       uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", jwt.RoleAdmin)
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.Create)
	s.router.GET("/orders/:id", authMiddleware, s.handler.Get)
	s.router.POST("/orders/:id/transition", authMiddleware, s.handler.Transition)
	s.router.GET("/orders/stats/unified", authMiddleware, s.handler.UnifiedStats)
	s.router.GET("/orders/notifications/failed", authMiddleware, s.handler.FailedNotifications)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestGet() {
	view := builder.NewOrderView().WithStatus("processing").Build()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "token")

	var resp resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(view.ID.String(), resp.ID)
	s.Equal("processing", resp.Status)
	s.Len(resp.History, 1)
}

func (s *OrderHandlerTestSuite) TestGet_NotFound() {
	id := uuid.New()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrOrderNotFound)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Order not found")
}

func (s *OrderHandlerTestSuite) TestGet_InvalidID() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
}

func (s *OrderHandlerTestSuite) TestCreate() {
	view := builder.NewOrderView().Build()
	s.mockCommands.EXPECT().
		Create(gomock.Any(), commands.CreateOrderInput{Priority: 3}).
		Return(view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", map[string]any{"priority": 3}, "token")

	var resp resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	s.Equal("pending", resp.Status)
}

func (s *OrderHandlerTestSuite) TestTransition() {
	view := builder.NewOrderView().WithStatus("processing").Build()
	s.mockCommands.EXPECT().
		Transition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in commands.TransitionOrderInput) (*queries.OrderView, error) {
			s.Equal(view.ID, in.OrderID)
			s.Equal(s.userID.String(), in.Actor)
			return view, nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		"/orders/"+view.ID.String()+"/transition",
		map[string]any{"to_status": "processing"}, "token")

	var resp resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("processing", resp.Status)
}

func (s *OrderHandlerTestSuite) TestTransition_UnknownStatus() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		"/orders/"+uuid.NewString()+"/transition",
		map[string]any{"to_status": "teleported"}, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown status")
}

func (s *OrderHandlerTestSuite) TestTransition_Illegal() {
	id := uuid.New()
	s.mockCommands.EXPECT().
		Transition(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrInvalidTransition)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		"/orders/"+id.String()+"/transition",
		map[string]any{"to_status": "delivered"}, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Transition not allowed")
}

func (s *OrderHandlerTestSuite) TestTransition_ConcurrentLoser() {
	id := uuid.New()
	s.mockCommands.EXPECT().
		Transition(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrConcurrentModification)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		"/orders/"+id.String()+"/transition",
		map[string]any{"to_status": "processing"}, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "modified concurrently")
}

func (s *OrderHandlerTestSuite) TestTransition_Unauthorized() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
		"/orders/"+uuid.NewString()+"/transition",
		map[string]any{"to_status": "processing"}, "")

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *OrderHandlerTestSuite) TestUnifiedStats() {
	s.mockQueries.EXPECT().UnifiedStats(gomock.Any()).Return(builder.NewOrderStatsView(), nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/stats/unified", nil, "token")

	var resp resdto.OrderStatsResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.EqualValues(5, resp.Total)
	s.EqualValues(2, resp.Counts["pending"])
}

func (s *OrderHandlerTestSuite) TestFailedNotifications_InvalidLimit() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/notifications/failed?limit=-2", nil, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid limit")
}
