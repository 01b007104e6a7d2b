package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"surplus/config"
	apimiddleware "surplus/internal/delivery/api/middleware"
	"surplus/internal/delivery/api/router"
	"surplus/internal/delivery/api/router/handler"
	"surplus/internal/delivery/api/validator"
	domainerrors "surplus/internal/domain/errors"
	mockUC "surplus/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testBasePath = "/mobile_api"
	testToken    = "valid-token"
)

var testUserID = uuid.MustParse("0192f0e4-6a1b-7c3d-8e4f-000000000001")

type testAPI struct {
	e          *echo.Echo
	userUC     *mockUC.MockUserUsecase
	profileUC  *mockUC.MockProfileUsecase
	catalogUC  *mockUC.MockCatalogUsecase
	wishlistUC *mockUC.MockWishlistUsecase
	cartUC     *mockUC.MockCartUsecase
	orderUC    *mockUC.MockOrderUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		userUC:     mockUC.NewMockUserUsecase(t),
		profileUC:  mockUC.NewMockProfileUsecase(t),
		catalogUC:  mockUC.NewMockCatalogUsecase(t),
		wishlistUC: mockUC.NewMockWishlistUsecase(t),
		cartUC:     mockUC.NewMockCartUsecase(t),
		orderUC:    mockUC.NewMockOrderUsecase(t),
	}

	api.userUC.EXPECT().Authenticate(mock.Anything, testToken).Return(testUserID, nil).Maybe()
	api.userUC.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(uuid.Nil, domainerrors.ErrInvalidToken).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.BasePath = testBasePath

	e := echo.New()
	e.Pre(echomiddleware.AddTrailingSlash())
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	router.NewRouter(router.RouterParams{
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{UserUC: api.userUC, Logger: logger}),
		ProfileHandler:  handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: api.profileUC, Logger: logger}),
		CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: api.catalogUC, Logger: logger}),
		WishlistHandler: handler.NewWishlistHandler(handler.WishlistHandlerParams{WishlistUC: api.wishlistUC, Logger: logger}),
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: api.cartUC, Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: api.orderUC, Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(api.userUC),
		Config:          cfg,
	}).RegisterRoutes(e)

	api.e = e

	return api
}

type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	token       string
}

func (a *testAPI) serve(r request) *httptest.ResponseRecorder {
	req := httptest.NewRequest(r.method, testBasePath+r.path, r.body)
	if r.contentType != "" {
		req.Header.Set(echo.HeaderContentType, r.contentType)
	}
	if r.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Token "+r.token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

// httptestGet requests a path outside the API base path.
func httptestGet(a *testAPI, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

// authed sends an authenticated request with an optional url-encoded form body.
func (a *testAPI) authed(method, path string, form url.Values) *httptest.ResponseRecorder {
	r := request{method: method, path: path, token: testToken}
	if form != nil {
		r.body = strings.NewReader(form.Encode())
		r.contentType = echo.MIMEApplicationForm
	}

	return a.serve(r)
}

type filePart struct {
	field    string
	filename string
	content  string
}

func multipartBody(t *testing.T, fields map[string]string, file *filePart) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile(file.field, file.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) map[string]any {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	require.Equal(t, code, body["code"])
	require.NotEmpty(t, body["error"])

	return body
}

func int64Ptr(v int64) *int64 {
	return &v
}
