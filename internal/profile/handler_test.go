package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	profile *Profile
	err     error
}

func (s *stubService) Get(ctx context.Context) (*Profile, error) {
	return s.profile, s.err
}

func (s *stubService) Update(ctx context.Context, dto UpdateProfileDTO) (*Profile, error) {
	return s.profile, s.err
}

func (s *stubService) UploadAvatar(ctx context.Context, data []byte, filename string) (string, error) {
	return "", s.err
}

func TestGetProfile(t *testing.T) {
	t.Run("AbsentRendersNullBody", func(t *testing.T) {
		h := NewHandler(&stubService{})

		rec := httptest.NewRecorder()
		h.Get(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		// The missing row must decode on the other end, so the body is a
		// JSON null, never empty.
		assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("PresentRendersObject", func(t *testing.T) {
		first := "Jo"
		h := NewHandler(&stubService{profile: &Profile{FirstName: &first}})

		rec := httptest.NewRecorder()
		h.Get(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"first_name":"Jo"`)
	})

	t.Run("UnauthorizedMapsTo401", func(t *testing.T) {
		h := NewHandler(&stubService{err: ErrUnauthorized})

		rec := httptest.NewRecorder()
		h.Get(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
