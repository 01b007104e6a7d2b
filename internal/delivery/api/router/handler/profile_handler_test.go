package handler_test

import (
	"context"
	"net/http"
	"testing"

	"surplus/internal/domain/entity"
	domainerrors "surplus/internal/domain/errors"
	"surplus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProfile() *usecase.ProfileView {
	return &usecase.ProfileView{
		ID:          "1",
		Name:        "Alice Liddell",
		Username:    "alice",
		Email:       "alice@example.com",
		PhoneNumber: "+201000000000",
		Gender:      "F",
		Birthday:    "1990-04-01",
		Image:       "https://cdn.example.com/avatars/a.png",
	}
}

func TestProfileHandler_GetProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newTestAPI(t)
		api.profileUC.EXPECT().GetProfile(mock.Anything, testUserID).Return(testProfile(), nil).Once()

		rec := api.authed(http.MethodGet, "/profile/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "F", body["gender"])
	})

	t.Run("missing token", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.serve(request{method: http.MethodGet, path: "/profile/"})

		assertErrorBody(t, rec, http.StatusUnauthorized, "401")
	})

	t.Run("unknown token", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.serve(request{method: http.MethodGet, path: "/profile/", token: "forged"})

		body := assertErrorBody(t, rec, http.StatusUnauthorized, "401")
		assert.Equal(t, "invalid token", body["error"])
	})
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	fields := map[string]string{
		"email":        "alice@example.org",
		"name":         "Alice L.",
		"phone_number": "+201000000001",
		"gender":       "Female",
		"birthday":     "1990-04-02",
	}

	t.Run("success", func(t *testing.T) {
		api := newTestAPI(t)
		updated := testProfile()
		updated.Email = "alice@example.org"

		api.profileUC.EXPECT().UpdateProfile(mock.Anything, testUserID, mock.Anything).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
				assert.Equal(t, "alice@example.org", input.Email)
				assert.Equal(t, entity.GenderFemale, input.Gender)
				assert.Equal(t, "a.jpg", input.Image.Filename)

				return updated, nil
			}).Once()

		body, contentType := multipartBody(t, fields, &filePart{field: "image", filename: "a.jpg", content: "jpg"})
		rec := api.serve(request{method: http.MethodPut, path: "/profile/", body: body, contentType: contentType, token: testToken})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "alice@example.org", decodeBody(t, rec)["email"])
	})

	t.Run("validation", func(t *testing.T) {
		api := newTestAPI(t)

		invalid := map[string]string{"email": "alice@example.org", "name": "Alice", "phone_number": "123456789012345678901", "gender": "M", "birthday": "1990-04-02"}
		body, contentType := multipartBody(t, invalid, nil)
		rec := api.serve(request{method: http.MethodPut, path: "/profile/", body: body, contentType: contentType, token: testToken})

		resp := assertErrorBody(t, rec, http.StatusBadRequest, "400")
		assert.Contains(t, resp["fields"], "phone_number")
	})

	t.Run("user missing", func(t *testing.T) {
		api := newTestAPI(t)
		api.profileUC.EXPECT().UpdateProfile(mock.Anything, testUserID, mock.Anything).
			Return(nil, domainerrors.ErrUserNotFound).Once()

		body, contentType := multipartBody(t, fields, nil)
		rec := api.serve(request{method: http.MethodPut, path: "/profile/", body: body, contentType: contentType, token: testToken})

		assertErrorBody(t, rec, http.StatusNotFound, "404")
	})
}
