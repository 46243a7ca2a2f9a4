//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ordersync/internal/handler/api"
	resdto "ordersync/internal/handler/dto/response"
	"ordersync/internal/pkg/errs"
	"ordersync/internal/usecase/commands"
	"ordersync/tests/common/httptest"
	commandsmock "ordersync/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RecoveryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRecoveryCommands
	handler      *api.RecoveryHandler
	sessionID    uuid.UUID
}

func (s *RecoveryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRecoveryCommands(s.mockCtrl)
	s.handler = api.NewRecoveryHandler(s.mockCommands)
	s.sessionID = uuid.New()

	s.router.POST("/cart-recovery/email", s.handler.SendEmail)
	s.router.POST("/cart-recovery/track", s.handler.Track)
	s.router.POST("/cart-recovery/claim", s.handler.Claim)
}

func (s *RecoveryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRecoveryHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecoveryHandlerTestSuite))
}

func (s *RecoveryHandlerTestSuite) TestSendEmail() {
	s.mockCommands.EXPECT().
		SendRecoveryEmail(gomock.Any(), commands.SendRecoveryEmailInput{
			SessionID: s.sessionID,
			Email:     "shopper@example.com",
		}).
		Return(&commands.SendRecoveryEmailResult{DiscountCode: "COMEBACK-1234"}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart-recovery/email",
		map[string]any{"session_id": s.sessionID, "email": "shopper@example.com"}, "")

	var resp resdto.SendRecoveryEmailResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("COMEBACK-1234", resp.DiscountCode)
	s.False(resp.AlreadySent)
}

func (s *RecoveryHandlerTestSuite) TestSendEmail_Disabled() {
	s.mockCommands.EXPECT().
		SendRecoveryEmail(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrRecoveryDisabled)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart-recovery/email",
		map[string]any{"session_id": s.sessionID, "email": "shopper@example.com"}, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "disabled")
}

func (s *RecoveryHandlerTestSuite) TestSendEmail_InvalidEmail() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart-recovery/email",
		map[string]any{"session_id": s.sessionID, "email": "not-an-address"}, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
}

func (s *RecoveryHandlerTestSuite) TestTrack() {
	s.mockCommands.EXPECT().
		TrackRecoveryEvent(gomock.Any(), s.sessionID, "link_opened").
		Return(nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart-recovery/track",
		map[string]any{"session_id": s.sessionID, "event": "link_opened"}, "")

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *RecoveryHandlerTestSuite) TestTrack_UnknownEvent() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart-recovery/track",
		map[string]any{"session_id": s.sessionID, "event": "window_shopped"}, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
}

func (s *RecoveryHandlerTestSuite) TestClaim() {
	s.mockCommands.EXPECT().
		ClaimRecoveryToken(gomock.Any(), "COMEBACK-1234").
		Return(&commands.ClaimRecoveryTokenResult{
			SessionID:    s.sessionID,
			DiscountCode: "COMEBACK-1234",
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart-recovery/claim",
		map[string]any{"discount_code": "COMEBACK-1234"}, "")

	var resp resdto.ClaimRecoveryTokenResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(s.sessionID.String(), resp.SessionID)
}

func (s *RecoveryHandlerTestSuite) TestClaim_UnknownCode() {
	s.mockCommands.EXPECT().
		ClaimRecoveryToken(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrRecoveryTokenNotFound)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart-recovery/claim",
		map[string]any{"discount_code": "NOPE"}, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Unknown discount code")
}

func (s *RecoveryHandlerTestSuite) TestClaim_SecondClaimLoses() {
	s.mockCommands.EXPECT().
		ClaimRecoveryToken(gomock.Any(), gomock.Any()).
		Return(nil, errs.ErrRecoveryTokenConsumed)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart-recovery/claim",
		map[string]any{"discount_code": "COMEBACK-1234"}, "")

	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already used")
}
