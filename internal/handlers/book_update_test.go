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

func TestBookUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookUpdater(ctrl)

	actorID := uuid.New()
	bookID := uuid.New()
	title := "Atlas, Second Edition"

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "owner updates",
			inputBody: BookUpdateRequest{Title: &title},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), actorID, bookID, &title, nil, nil).
					Return(&models.BookDB{BookID: bookID, Title: title, CreatedBy: actorID}, nil)
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
			name:      "book missing",
			inputBody: BookUpdateRequest{Title: &title},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), actorID, bookID, &title, nil, nil).
					Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "not the owner",
			inputBody: BookUpdateRequest{Title: &title},
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), actorID, bookID, &title, nil, nil).
					Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
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

			req := httptest.NewRequest(http.MethodPut, "/books/"+bookID.String(), bytes.NewReader(bodyBytes))
			req = withActor(withURLParam(req, "id", bookID.String()), actorID)
			w := httptest.NewRecorder()

			NewBookUpdateHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
