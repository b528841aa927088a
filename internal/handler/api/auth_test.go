//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stitchcart/internal/handler/api"
	"stitchcart/internal/infra"
	"stitchcart/internal/pkg/config"
	"stitchcart/internal/pkg/cookie"
	"stitchcart/internal/pkg/errs"
	"stitchcart/internal/pkg/jwt"
	"stitchcart/internal/usecase/commands"
	"stitchcart/internal/usecase/queries"
	commandsmock "stitchcart/tests/mock/commands"
	queriesmock "stitchcart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.userID = uuid.New()

	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, cfg.Cookie)

	authStub := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", authStub, s.handler.Logout)
	s.router.GET("/auth/me", authStub, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) postJSON(url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerTestSuite) TestLogin() {
	validBody := map[string]any{"email": "buyer@example.com", "password": "password123"}

	s.Run("sets the access token cookie on success", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&commands.LoginResult{
				Token: "signed-token",
				User:  &queries.UserView{ID: s.userID, Email: "buyer@example.com", Role: "buyer"},
			}, nil)

		w := s.postJSON("/auth/login", validBody)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"access_token":"signed-token"`)

		cookies := w.Result().Cookies()
		s.Require().NotEmpty(cookies)
		s.Equal(cookie.AccessTokenCookieName, cookies[0].Name)
		s.Equal("signed-token", cookies[0].Value)
	})

	s.Run("wrong credentials are unauthorized", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials)

		w := s.postJSON("/auth/login", validBody)

		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Invalid email or password")
	})

	s.Run("inactive account is forbidden", func() {
		s.mockCommands.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserInactive)

		w := s.postJSON("/auth/login", validBody)

		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("malformed email is a bad request", func() {
		w := s.postJSON("/auth/login", map[string]any{"email": "not-an-email", "password": "password123"})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("short password is a bad request", func() {
		w := s.postJSON("/auth/login", map[string]any{"email": "buyer@example.com", "password": "short"})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := s.postJSON("/auth/logout", nil)

	s.Equal(http.StatusNoContent, w.Code)

	cookies := w.Result().Cookies()
	s.Require().NotEmpty(cookies)
	s.Equal(cookie.AccessTokenCookieName, cookies[0].Name)
	s.Negative(cookies[0].MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns the account view", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID).
			Return(&queries.UserView{ID: s.userID, Email: "buyer@example.com", Role: "buyer"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "buyer@example.com")
	})

	s.Run("deleted account is not found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.userID).
			Return(nil, infra.WrapRepoErr("user not found", errs.New("no rows"), infra.KindNotFound))

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		s.Equal(http.StatusNotFound, w.Code)
	})
}
