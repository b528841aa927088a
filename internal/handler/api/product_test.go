//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stitchcart/internal/handler/api"
	"stitchcart/internal/infra"
	"stitchcart/internal/pkg/errs"
	"stitchcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	queriesmock "stitchcart/tests/mock/queries"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockProductQueries
	handler     *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockQueries)

	s.router.GET("/products", s.handler.ListProducts)
	s.router.GET("/products/:id", s.handler.GetProduct)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ProductHandlerTestSuite) TestGetProduct() {
	s.Run("returns the view with tiers", func() {
		min := int64(100)
		view := &queries.ProductView{
			ID:           uuid.New(),
			Title:        "Organic Cotton Tee",
			Price:        "10.00",
			Currency:     "USD",
			MOQ:          50,
			LeadTimeDays: 14,
			Tiers:        []queries.TierView{{MinQuantity: min, PricePerUnit: "8.00"}},
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		w := s.get("/products/" + view.ID.String())

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Organic Cotton Tee")
		s.Contains(w.Body.String(), `"min_quantity":100`)
	})

	s.Run("unknown product is not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("product not found", errs.New("no rows"), infra.KindNotFound))

		w := s.get("/products/" + id.String())

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("malformed id is a bad request", func() {
		w := s.get("/products/not-a-uuid")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *ProductHandlerTestSuite) TestListProducts() {
	s.Run("returns the page and the next cursor", func() {
		items := []*queries.ProductListItem{
			{ID: uuid.New(), Title: "Tee", Price: "10.00", Currency: "USD", MOQ: 50, CreatedAt: time.Now().UTC()},
		}
		next := &queries.Cursor{After: "opaque"}
		s.mockQueries.EXPECT().List(gomock.Any(), nil, 0).Return(items, next, nil)

		w := s.get("/products")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"next_cursor":"opaque"`)
	})

	s.Run("passes the cursor through", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.ProductListItem{}, nil, nil)

		w := s.get("/products?cursor=abc&limit=5")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("invalid cursor is a bad request", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Mark(errs.New("bad"), queries.ErrInvalidCursor))

		w := s.get("/products?cursor=!!!")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("non numeric limit is a bad request", func() {
		w := s.get("/products?limit=ten")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}
