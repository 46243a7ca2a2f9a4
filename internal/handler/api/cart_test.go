//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ordersync/internal/handler/api"
	resdto "ordersync/internal/handler/dto/response"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/pkg/jwt"
	"ordersync/internal/usecase/commands"
	"ordersync/tests/common/builder"
	"ordersync/tests/common/httptest"
	commandsmock "ordersync/tests/mock/commands"
	queriesmock "ordersync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	sessionID    uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries)
	s.sessionID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.sessionID)
		c.Set("user_role", jwt.RoleCustomer)
		c.Next()
	}

	s.router.GET("/cart", authMiddleware, s.handler.Get)
	s.router.PUT("/cart/items/:id", authMiddleware, s.handler.SetItem)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) TestGet() {
	productID := uuid.New()
	view := builder.NewCartView().
		WithSessionID(s.sessionID).
		WithRevision(4).
		WithLine(productID, 2, 1299).
		Build()
	s.mockQueries.EXPECT().GetBySession(gomock.Any(), s.sessionID).Return(view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "token")

	var resp resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(s.sessionID.String(), resp.SessionID)
	s.EqualValues(4, resp.Revision)
	s.EqualValues(2598, resp.TotalCents)
	s.Len(resp.Lines, 1)
}

func (s *CartHandlerTestSuite) TestGet_NotFound() {
	s.mockQueries.EXPECT().GetBySession(gomock.Any(), s.sessionID).Return(nil, errs.ErrCartNotFound)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Cart not found")
}

func (s *CartHandlerTestSuite) TestSetItem() {
	productID := uuid.New()
	s.mockCommands.EXPECT().
		SetItemQuantity(gomock.Any(), commands.SetItemQuantityInput{
			SessionID:      s.sessionID,
			ProductID:      productID,
			Quantity:       2,
			UnitPriceCents: 1299,
			Revision:       5,
		}).
		Return(&commands.SetItemQuantityResult{Revision: 5}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items/"+productID.String(),
		map[string]any{"quantity": 2, "unit_price_cents": 1299, "revision": 5}, "token")

	var resp resdto.SetCartItemResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.EqualValues(5, resp.Revision)
	s.False(resp.AlreadyApplied)
}

func (s *CartHandlerTestSuite) TestSetItem_DuplicatePush() {
	productID := uuid.New()
	s.mockCommands.EXPECT().
		SetItemQuantity(gomock.Any(), gomock.Any()).
		Return(&commands.SetItemQuantityResult{Revision: 5, AlreadyApplied: true}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items/"+productID.String(),
		map[string]any{"quantity": 2, "revision": 5}, "token")

	var resp resdto.SetCartItemResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.True(resp.AlreadyApplied)
}

func (s *CartHandlerTestSuite) TestSetItem_MissingRevision() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items/"+uuid.NewString(),
		map[string]any{"quantity": 2}, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
}

func (s *CartHandlerTestSuite) TestSetItem_StaleRevisionConflict() {
	s.mockCommands.EXPECT().
		SetItemQuantity(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrStaleCartRevision)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/items/"+uuid.NewString(),
		map[string]any{"quantity": 2, "revision": 3}, "token")

	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "modified concurrently")
}
