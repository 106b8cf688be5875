package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/akomarov/bookshelf/internal/models"
)

func TestBookListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookLister(ctrl)

	t.Run("catalog returned", func(t *testing.T) {
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return([]models.BookDB{
				{BookID: uuid.New(), Title: "Atlas"},
				{BookID: uuid.New(), Title: "Compass"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		w := httptest.NewRecorder()

		NewBookListHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var books []models.BookDB
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
		assert.Len(t, books, 2)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		w := httptest.NewRecorder()

		NewBookListHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
