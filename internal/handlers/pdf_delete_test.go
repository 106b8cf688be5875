package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/akomarov/bookshelf/internal/services"
)

func TestPdfDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPdfDeleter(ctrl)

	actorID := uuid.New()
	pdfID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "uploader deletes",
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), actorID, pdfID).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "pdf missing",
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), actorID, pdfID).
					Return(services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "not the uploader",
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), actorID, pdfID).
					Return(services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, "/book-pdfs/"+pdfID.String(), nil)
			req = withActor(withURLParam(req, "id", pdfID.String()), actorID)
			w := httptest.NewRecorder()

			NewPdfDeleteHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
