package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/akomarov/bookshelf/internal/models"
	"github.com/akomarov/bookshelf/internal/services"
)

func TestPdfUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPdfUpdater(ctrl)

	actorID := uuid.New()
	pdfID := uuid.New()

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "uploader renames",
			inputBody: PdfUpdateRequest{Filename: "renamed.pdf"},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateFilename(gomock.Any(), actorID, pdfID, "renamed.pdf").
					Return(&models.BookPdfDB{PdfID: pdfID, Filename: "renamed.pdf", UploadedBy: actorID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "not the uploader",
			inputBody: PdfUpdateRequest{Filename: "renamed.pdf"},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateFilename(gomock.Any(), actorID, pdfID, "renamed.pdf").
					Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:      "pdf missing",
			inputBody: PdfUpdateRequest{Filename: "renamed.pdf"},
			mockSetup: func() {
				mockSvc.EXPECT().
					UpdateFilename(gomock.Any(), actorID, pdfID, "renamed.pdf").
					Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPut, "/book-pdfs/"+pdfID.String(), bytes.NewReader(bodyBytes))
			req = withActor(withURLParam(req, "id", pdfID.String()), actorID)
			w := httptest.NewRecorder()

			NewPdfUpdateHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
