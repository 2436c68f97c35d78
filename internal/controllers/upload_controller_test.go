package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/dtos"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/routes"
	"github.com/infotechpranavi-coder/globetech-website-sub001/internal/services"
)

type fakeUploader struct {
	calls int
	url   string
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func newUploadRouter(uploader *fakeUploader) *mux.Router {
	ctrl := NewUploadController(services.NewUploadService(uploader))
	router := mux.NewRouter()
	router.HandleFunc(routes.Upload, ctrl.UploadFile).Methods(http.MethodPost)
	return router
}

func multipartUpload(t *testing.T, fieldName, fileName, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buf, writer.FormDataContentType()
}

func TestUploadFile(t *testing.T) {
	uploader := &fakeUploader{url: "https://res.cloudinary.com/demo/image/upload/globetech/abc.jpg"}
	router := newUploadRouter(uploader)

	body, contentType := multipartUpload(t, "file", "machine.jpg", "image/jpeg", []byte("jpeg bytes"))
	req := httptest.NewRequest(http.MethodPost, routes.Upload, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dtos.UploadResponse
	decodeBody(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, uploader.url, resp.URL)
	require.Equal(t, 1, uploader.calls)
}

// Non-image types are rejected before any bytes leave the server.
func TestUploadFileRejectsNonImage(t *testing.T) {
	uploader := &fakeUploader{url: "unused"}
	router := newUploadRouter(uploader)

	body, contentType := multipartUpload(t, "file", "brochure.pdf", "application/pdf", []byte("%PDF-1.7"))
	req := httptest.NewRequest(http.MethodPost, routes.Upload, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, errorBody(t, rec).Error, "Unsupported file type")
	require.Zero(t, uploader.calls, "rejected uploads must never reach the media host")
}

func TestUploadFileMissingField(t *testing.T) {
	uploader := &fakeUploader{}
	router := newUploadRouter(uploader)

	body, contentType := multipartUpload(t, "attachment", "machine.jpg", "image/jpeg", []byte("jpeg bytes"))
	req := httptest.NewRequest(http.MethodPost, routes.Upload, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, uploader.calls)
}
