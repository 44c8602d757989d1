//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"vmarket/internal/handler/api"
	resdto "vmarket/internal/handler/dto/response"
	"vmarket/internal/usecase/queries"
	"vmarket/tests/common/httptest"
	commandsmock "vmarket/tests/mock/commands"
	queriesmock "vmarket/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotificationCommands
	mockQueries  *queriesmock.MockNotificationQueries
	handler      *api.NotificationHandler
	testUserID   uuid.UUID
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.handler = api.NewNotificationHandler(s.mockCommands, s.mockQueries)
	s.testUserID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.testUserID)
		c.Set("username", "test_user")
		c.Next()
	}

	s.router.GET("/notifications", authMiddleware, s.handler.List)
	s.router.POST("/notifications/read", authMiddleware, s.handler.MarkAllRead)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

func (s *NotificationHandlerTestSuite) TestList() {
	s.Run("success: returns the caller's notifications", func() {
		views := []*queries.NotificationView{
			{ID: 2, BuyerUsername: "buyer_two", ProductTitle: "Item B", IsRead: false, CreatedAt: time.Now()},
			{ID: 1, BuyerUsername: "buyer_one", ProductTitle: "Item A", IsRead: true, CreatedAt: time.Now().Add(-time.Hour)},
		}
		s.mockQueries.EXPECT().ListForSeller(gomock.Any(), s.testUserID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "bearer-token")

		var body []resdto.NotificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("buyer_two", body[0].BuyerUsername)
		s.False(body[0].IsRead)
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *NotificationHandlerTestSuite) TestMarkAllRead() {
	s.Run("success: reports how many rows were updated", func() {
		s.mockCommands.EXPECT().MarkAllRead(gomock.Any(), s.testUserID).
			Return(int64(3), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/read", nil, "bearer-token")

		var body resdto.MarkReadResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.Updated)
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/notifications/read", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
