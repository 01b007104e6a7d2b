package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"surplus/internal/delivery/api/middleware"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	dateLayout     = "2006-01-02"
	imageFormField = "image"
)

// productRequest identifies a product in wishlist and cart mutations.
type productRequest struct {
	ProductID int64 `json:"product_id" form:"product_id" query:"product_id" validate:"required,gt=0"`
}

// bindAndValidate decodes the request into req and applies its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := bind(c, req); err != nil {
		return err
	}

	return c.Validate(req)
}

// bind decodes the request into req without validating it.
func bind(c echo.Context, req any) error {
	if err := moveDeleteFormToQuery(c); err != nil {
		return err
	}

	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return err
		}

		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}

// moveDeleteFormToQuery makes url-encoded DELETE bodies visible to the query binder,
// since net/http only parses form bodies of POST, PUT and PATCH.
func moveDeleteFormToQuery(c echo.Context) error {
	r := c.Request()
	if r.Method != http.MethodDelete || r.ContentLength == 0 ||
		!strings.HasPrefix(r.Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm) {
		return nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	query := r.URL.Query()
	for key, vals := range values {
		for _, v := range vals {
			query.Add(key, v)
		}
	}
	r.URL.RawQuery = query.Encode()
	r.Body = http.NoBody
	r.ContentLength = 0

	return nil
}

func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return userID, nil
}

// formImage returns the optional uploaded image and a func releasing it.
func formImage(c echo.Context) (*usecase.ImageUpload, func(), error) {
	header, err := c.FormFile(imageFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return &usecase.ImageUpload{
		Filename:    header.Filename,
		ContentType: imageContentType(header),
		Content:     file,
	}, func() { _ = file.Close() }, nil
}

func imageContentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get(echo.HeaderContentType); ct != "" {
		return ct
	}

	return "application/octet-stream"
}

// optionalInt parses a query parameter that may be absent.
func optionalInt(c echo.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.NewValidationError(map[string]string{name: "A valid integer is required."})
	}

	return &value, nil
}
