package httpapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"

	"godesa/internal/content"
)

func produkHukumRequest(t *testing.T, contentType string, size int) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("judul", "SK Kepala Desa No. 1"))

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="sk.pdf"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/produk-hukum", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestDecodeProdukHukumAcceptsPDF(t *testing.T) {
	req := produkHukumRequest(t, "application/pdf", 1024)

	doc, file, err := decodeProdukHukum(req)
	require.NoError(t, err)
	require.NotNil(t, file)
	require.Equal(t, "SK Kepala Desa No. 1", doc.Judul)
	require.Equal(t, "sk.pdf", doc.FileName)
	require.NotNil(t, doc.FileSize)
	require.Equal(t, int64(1024), *doc.FileSize)
}

func TestDecodeProdukHukumRejectsOversizedPDF(t *testing.T) {
	req := produkHukumRequest(t, "application/pdf", maxUploadSize+1)

	_, _, err := decodeProdukHukum(req)
	require.ErrorIs(t, err, content.ErrValidation)
}

func TestDecodeProdukHukumRejectsNonPDF(t *testing.T) {
	req := produkHukumRequest(t, "image/jpeg", 1024)

	_, _, err := decodeProdukHukum(req)
	require.ErrorIs(t, err, content.ErrValidation)
}
