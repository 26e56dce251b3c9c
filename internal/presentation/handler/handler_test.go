package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mediahub/internal/domain/dto"
	"mediahub/internal/domain/entity"
	"mediahub/internal/domain/model"
	"mediahub/internal/domain/repository"
	"mediahub/internal/presentation"
)

const knownID = "0b7e1f2a-3c4d-4e5f-8a9b-0c1d2e3f4a5b"

func multipartBody(t *testing.T, field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}

	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestUploadHandler(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	uploader := &MockUploader{}
	uploader.On("Upload", mock.Anything, mock.MatchedBy(func(in entity.UploadInput) bool {
		return in.Filename == "photo.JPG" && in.MimeType == "image/jpeg" && in.Size == 10
	})).Return(&model.Media{
		ID:        knownID,
		ObjectKey: "whatever.jpg",
		Filename:  "photo.JPG",
		MimeType:  "image/jpeg",
		Size:      10,
		IsPublic:  true,
		CreatedAt: createdAt,
	}, nil)

	e := echo.New()
	e.POST("/media", NewUploadHandler(uploader).HandleUpload)

	body, contentType := multipartBody(t, presentation.FileField, "photo.JPG", "image/jpeg", make([]byte, 10))
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec := serve(e, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, knownID, got["id"])
	assert.Equal(t, "photo.JPG", got["filename"])
	assert.Equal(t, "image/jpeg", got["mimeType"])
	assert.Equal(t, float64(10), got["size"])
	assert.Equal(t, "2025-03-01T10:00:00Z", got["createdAt"])
	assert.NotContains(t, got, "objectKey")
	assert.NotContains(t, got, "isPublic")
}

func TestUploadHandlerSniffsMissingContentType(t *testing.T) {
	t.Parallel()

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	uploader := &MockUploader{}
	uploader.On("Upload", mock.Anything, mock.MatchedBy(func(in entity.UploadInput) bool {
		if in.MimeType != "image/png" {
			return false
		}
		// the body must be rewound after sniffing
		b, err := io.ReadAll(in.Body)

		return err == nil && bytes.Equal(b, png)
	})).Return(&model.Media{ID: knownID, Filename: "pic", MimeType: "image/png"}, nil)

	e := echo.New()
	e.POST("/media", NewUploadHandler(uploader).HandleUpload)

	body, contentType := multipartBody(t, presentation.FileField, "pic", "", png)
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec := serve(e, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	uploader.AssertExpectations(t)
}

func TestUploadHandlerMissingFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        io.Reader
		contentType string
	}{
		{"wrong field", nil, ""},
		{"not multipart", strings.NewReader(`{"file":"x"}`), echo.MIMEApplicationJSON},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uploader := &MockUploader{}
			e := echo.New()
			e.POST("/media", NewUploadHandler(uploader).HandleUpload)

			body, contentType := tt.body, tt.contentType
			if body == nil {
				body, contentType = multipartBody(t, "other", "a.txt", "text/plain", []byte("abc"))
			}

			req := httptest.NewRequest(http.MethodPost, "/media", body)
			req.Header.Set(echo.HeaderContentType, contentType)

			rec := serve(e, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message":"file is required"}`, rec.Body.String())
			assert.Equal(t, "file is required", rec.Header().Get(presentation.ReasonTag))
			uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
		})
	}
}

func TestUploadHandlerFailure(t *testing.T) {
	t.Parallel()

	uploader := &MockUploader{}
	uploader.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	e := echo.New()
	e.POST("/media", NewUploadHandler(uploader).HandleUpload)

	body, contentType := multipartBody(t, presentation.FileField, "a.txt", "text/plain", []byte("abc"))
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set(echo.HeaderContentType, contentType)

	rec := serve(e, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestListHandler(t *testing.T) {
	t.Parallel()

	newer := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	lister := &MockLister{}
	lister.On("ListPublic", mock.Anything).Return([]model.Media{
		{ID: "2", Filename: "b.png", MimeType: "image/png", Size: 2, IsPublic: true, CreatedAt: newer},
		{ID: "1", Filename: "a.png", MimeType: "image/png", Size: 1, IsPublic: true, CreatedAt: older},
	}, nil)

	e := echo.New()
	e.GET("/media", NewListHandler(lister).HandleList)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/media", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.MediaDescriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
}

func TestListHandlerEmpty(t *testing.T) {
	t.Parallel()

	lister := &MockLister{}
	lister.On("ListPublic", mock.Anything).Return([]model.Media{}, nil)

	e := echo.New()
	e.GET("/media", NewListHandler(lister).HandleList)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/media", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetHandler(t *testing.T) {
	t.Parallel()

	content := "0123456789"
	media := &model.Media{
		ID:        knownID,
		ObjectKey: knownID + ".jpg",
		Filename:  "photo.JPG",
		MimeType:  "image/jpeg",
		Size:      int64(len(content)),
	}

	tests := []struct {
		name       string
		id         string
		setup      func(g *MockGetter)
		expectCode int
	}{
		{
			name:       "not a uuid",
			id:         "not-a-uuid",
			setup:      func(*MockGetter) {},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "unknown id",
			id:   "6f1c2d3e-4a5b-4c6d-8e7f-9a0b1c2d3e4f",
			setup: func(g *MockGetter) {
				g.On("FindByID", mock.Anything, "6f1c2d3e-4a5b-4c6d-8e7f-9a0b1c2d3e4f").
					Return(nil, repository.ErrMediaNotFound)
			},
			expectCode: http.StatusNotFound,
		},
		{
			name: "record without blob",
			id:   knownID,
			setup: func(g *MockGetter) {
				g.On("FindByID", mock.Anything, knownID).Return(media, nil)
				g.On("FileStream", mock.Anything, media.ObjectKey).Return(nil, repository.ErrObjectNotFound)
			},
			expectCode: http.StatusNotFound,
		},
		{
			name: "database failure",
			id:   knownID,
			setup: func(g *MockGetter) {
				g.On("FindByID", mock.Anything, knownID).Return(nil, errors.New("db down"))
			},
			expectCode: http.StatusInternalServerError,
		},
		{
			name: "found",
			id:   knownID,
			setup: func(g *MockGetter) {
				g.On("FindByID", mock.Anything, knownID).Return(media, nil)
				g.On("FileStream", mock.Anything, media.ObjectKey).
					Return(io.NopCloser(strings.NewReader(content)), nil)
			},
			expectCode: http.StatusOK,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			getter := &MockGetter{}
			tt.setup(getter)

			e := echo.New()
			e.GET("/media/:id", NewGetHandler(getter).HandleGet)

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/media/"+tt.id, nil))
			assert.Equal(t, tt.expectCode, rec.Code)

			if tt.expectCode == http.StatusBadRequest {
				getter.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			}

			if tt.expectCode == http.StatusOK {
				assert.Equal(t, content, rec.Body.String())
				assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
				assert.Equal(t, `inline; filename="photo.JPG"`, rec.Header().Get(echo.HeaderContentDisposition))
				assert.Equal(t, "private, max-age=31536000", rec.Header().Get("Cache-Control"))
				assert.Equal(t, "10", rec.Header().Get(echo.HeaderContentLength))
			} else {
				assert.NotEmpty(t, rec.Header().Get(presentation.ReasonTag))
			}
		})
	}
}

func TestHeadHandler(t *testing.T) {
	t.Parallel()

	media := &model.Media{ID: knownID, ObjectKey: knownID + ".png", Filename: "a.png", MimeType: "image/png", Size: 5}

	tests := []struct {
		name       string
		stat       entity.ObjectStat
		err        error
		expectCode int
	}{
		{"found", entity.Found(entity.ObjectInfo{Key: media.ObjectKey, Size: 5}), nil, http.StatusOK},
		{"blob missing", entity.NotFound(), nil, http.StatusNotFound},
		{"lookup error", entity.LookupError(errors.New("timeout")), nil, http.StatusBadGateway},
		{"no record", entity.ObjectStat{}, repository.ErrMediaNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			getter := &MockGetter{}
			if tt.err != nil {
				getter.On("Stat", mock.Anything, knownID).Return(nil, tt.stat, tt.err)
			} else {
				getter.On("Stat", mock.Anything, knownID).Return(media, tt.stat, nil)
			}

			e := echo.New()
			e.HEAD("/media/:id", NewHeadHandler(getter).HandleHead)

			rec := serve(e, httptest.NewRequest(http.MethodHead, "/media/"+knownID, nil))
			assert.Equal(t, tt.expectCode, rec.Code)
			assert.Empty(t, rec.Body.String())

			if tt.expectCode == http.StatusOK {
				assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
				assert.Equal(t, "5", rec.Header().Get(echo.HeaderContentLength))
			}
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		deleted    bool
		err        error
		expectCode int
	}{
		{"invalid id", "nope", false, nil, http.StatusBadRequest},
		{"deleted", knownID, true, nil, http.StatusNoContent},
		{"nothing to delete", knownID, false, nil, http.StatusNotFound},
		{"failure", knownID, false, errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deleter := &MockDeleter{}
			deleter.On("Delete", mock.Anything, tt.id).Return(tt.deleted, tt.err)

			e := echo.New()
			e.DELETE("/media/:id", NewDeleteHandler(deleter).HandleDelete)

			rec := serve(e, httptest.NewRequest(http.MethodDelete, "/media/"+tt.id, nil))
			assert.Equal(t, tt.expectCode, rec.Code)

			if tt.expectCode == http.StatusBadRequest {
				deleter.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestParseIDRejectsNonCanonicalForms(t *testing.T) {
	t.Parallel()

	ids := []string{
		"urn:uuid:" + knownID,
		"%7B" + knownID + "%7D",
		strings.ReplaceAll(knownID, "-", ""),
		"not-a-uuid",
	}

	for _, id := range ids {

		id := id
		t.Run(id, func(t *testing.T) {
			t.Parallel()

			getter := &MockGetter{}
			e := echo.New()
			e.GET("/media/:id", NewGetHandler(getter).HandleGet)

			rec := serve(e, httptest.NewRequest(http.MethodGet, "/media/"+id, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			getter.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		})
	}
}
