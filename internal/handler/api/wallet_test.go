//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"vmarket/internal/handler/api"
	reqdto "vmarket/internal/handler/dto/request"
	resdto "vmarket/internal/handler/dto/response"
	"vmarket/internal/pkg/errs"
	"vmarket/internal/usecase/commands"
	"vmarket/internal/usecase/queries"
	"vmarket/tests/common/httptest"
	"vmarket/tests/common/testutil"
	commandsmock "vmarket/tests/mock/commands"
	queriesmock "vmarket/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WalletHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWalletCommands
	mockQueries  *queriesmock.MockWalletQueries
	handler      *api.WalletHandler
	testUserID   uuid.UUID
}

func (s *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWalletCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWalletQueries(s.mockCtrl)
	s.handler = api.NewWalletHandler(s.mockCommands, s.mockQueries)
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

	s.router.GET("/wallet", authMiddleware, s.handler.Get)
	s.router.POST("/wallet/codes", authMiddleware, s.handler.MintCode)
	s.router.POST("/wallet/codes/redeem", authMiddleware, s.handler.RedeemCode)
}

func (s *WalletHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWalletHandlerSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *WalletHandlerTestSuite) TestGet() {
	s.Run("success: returns username and balance", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.testUserID).
			Return(&queries.WalletView{Username: "test_user", Balance: 420}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wallet", nil, "bearer-token")

		var body resdto.WalletResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("test_user", body.Username)
		s.Equal(int64(420), body.Balance)
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wallet", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 when caller has no profile row", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.testUserID).
			Return(nil, errs.ErrProfileMissing).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wallet", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestMintCode
// ================================================================================

func (s *WalletHandlerTestSuite) TestMintCode() {
	url := "/wallet/codes"
	reqBody := reqdto.MintCodeRequest{Amount: 100}

	s.Run("success: returns 201 with the minted code", func() {
		s.mockCommands.EXPECT().MintCode(gomock.Any(), s.testUserID, int64(100)).
			Return(&commands.MintResult{Code: "AbCd1234EfGh5678"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.MintCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("AbCd1234EfGh5678", body.Code)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "amount zero", mutate: testutil.Field("amount", 0)},
			{name: "amount negative", mutate: testutil.Field("amount", -5)},
			{name: "amount missing", mutate: testutil.Field("amount", nil)},
			{name: "amount not an integer", mutate: testutil.Field("amount", 10.5)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 when balance is too low", func() {
		s.mockCommands.EXPECT().MintCode(gomock.Any(), s.testUserID, int64(100)).
			Return(nil, errs.ErrInsufficientBalance).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "balance")
	})

	s.Run("error: 409 when the transaction keeps conflicting", func() {
		s.mockCommands.EXPECT().MintCode(gomock.Any(), s.testUserID, int64(100)).
			Return(nil, errs.ErrConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestRedeemCode
// ================================================================================

func (s *WalletHandlerTestSuite) TestRedeemCode() {
	url := "/wallet/codes/redeem"
	reqBody := reqdto.RedeemCodeRequest{Code: "AbCd1234EfGh5678"}

	s.Run("success: returns 200 with the credited amount", func() {
		s.mockCommands.EXPECT().RedeemCode(gomock.Any(), s.testUserID, "AbCd1234EfGh5678").
			Return(&commands.RedeemResult{Amount: 100}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.RedeemCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(100), body.Amount)
	})

	s.Run("error: 400 when code is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("code", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 for invalid or already used code", func() {
		s.mockCommands.EXPECT().RedeemCode(gomock.Any(), s.testUserID, "AbCd1234EfGh5678").
			Return(nil, errs.ErrCodeInvalidOrUsed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "code")
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
