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

func TestBookDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookDeleter(ctrl)

	actorID := uuid.New()
	bookID := uuid.New()

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "owner deletes",
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), actorID, bookID).
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message": "Book deleted"}`,
		},
		{
			name: "book missing",
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), actorID, bookID).
					Return(services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "not the owner",
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), actorID, bookID).
					Return(services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, "/books/"+bookID.String(), nil)
			req = withActor(withURLParam(req, "id", bookID.String()), actorID)
			w := httptest.NewRecorder()

			NewBookDeleteHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
