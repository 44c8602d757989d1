//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"vmarket/internal/handler/api"
	resdto "vmarket/internal/handler/dto/response"
	"vmarket/internal/pkg/errs"
	"vmarket/internal/usecase/commands"
	"vmarket/internal/usecase/queries"
	"vmarket/tests/common/httptest"
	commandsmock "vmarket/tests/mock/commands"
	queriesmock "vmarket/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPurchaseCommands
	mockQueries  *queriesmock.MockPurchaseQueries
	handler      *api.PurchaseHandler
	testUserID   uuid.UUID
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPurchaseCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPurchaseQueries(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockCommands, s.mockQueries)
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

	s.router.POST("/listings/:id/purchase", authMiddleware, s.handler.Purchase)
	s.router.GET("/purchases", authMiddleware, s.handler.History)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

// ================================================================================
// TestPurchase
// ================================================================================

func (s *PurchaseHandlerTestSuite) TestPurchase() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String() + "/purchase"

	s.Run("success: returns 200 with the delivery link", func() {
		s.mockCommands.EXPECT().Purchase(gomock.Any(), s.testUserID, listingID).
			Return(&commands.PurchaseResult{Link: "https://example.com/delivery/abc123"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("https://example.com/delivery/abc123", body.Link)
	})

	s.Run("error: 400 for malformed listing ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/listings/nope/purchase", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("business rule mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{name: "listing not found", err: errs.ErrListingNotFound, expectCode: http.StatusNotFound, expectMsg: "not available"},
			{name: "listing not accepted", err: errs.ErrListingNotAccepted, expectCode: http.StatusBadRequest, expectMsg: "not accepted"},
			{name: "out of stock", err: errs.ErrOutOfStock, expectCode: http.StatusBadRequest, expectMsg: "out of stock"},
			{name: "self purchase", err: errs.ErrSelfPurchase, expectCode: http.StatusBadRequest, expectMsg: "your own"},
			{name: "missing profile", err: errs.ErrProfileMissing, expectCode: http.StatusNotFound, expectMsg: "profile"},
			{name: "insufficient funds", err: errs.ErrInsufficientFunds, expectCode: http.StatusBadRequest, expectMsg: "balance"},
			{name: "serialization conflict", err: errs.ErrConflict, expectCode: http.StatusConflict, expectMsg: "retry"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Purchase(gomock.Any(), s.testUserID, listingID).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestHistory
// ================================================================================

func (s *PurchaseHandlerTestSuite) TestHistory() {
	s.Run("success: returns the caller's purchase trail", func() {
		now := time.Now()
		views := []*queries.PurchaseEventView{
			{ID: 2, ItemTitle: "Second Item", CreatedAt: now},
			{ID: 1, ItemTitle: "First Item", CreatedAt: now.Add(-time.Hour)},
		}
		s.mockQueries.EXPECT().ListForBuyer(gomock.Any(), "test_user").
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases", nil, "bearer-token")

		var body []resdto.PurchaseEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("Second Item", body[0].ItemTitle)
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
