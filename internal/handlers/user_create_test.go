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

func TestUserCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserCreator(ctrl)

	email := "john@example.com"
	displayName := "John Doe"

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name: "success",
			inputBody: UserCreateRequest{
				DisplayName: &displayName,
				Email:       &email,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), nil, &displayName, &email, nil, nil).
					Return(&models.UserDB{UserID: uuid.New(), DisplayName: &displayName, Email: &email}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			inputBody: UserCreateRequest{
				Email: &email,
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), nil, nil, &email, nil, nil).
					Return(nil, services.ErrConflict)
			},
			expectedCode: http.StatusBadRequest,
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

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			NewUserCreateHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
