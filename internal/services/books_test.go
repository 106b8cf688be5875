package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/akomarov/bookshelf/internal/models"
	"github.com/akomarov/bookshelf/internal/services"
)

func TestBookService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookReader(ctrl)
	mockWriter := services.NewMockBookWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := services.NewBookService(mockReader, mockWriter, mockKafka)

	actorID := uuid.New()
	bookID := uuid.New()

	tests := []struct {
		name       string
		title      string
		author     string
		created    *models.BookDB
		writerErr  error
		wantWriter bool
		wantErr    error
	}{
		{
			name:       "successful creation",
			title:      "The Go Programming Language",
			author:     "Donovan",
			created:    &models.BookDB{BookID: bookID, Title: "The Go Programming Language", CreatedBy: actorID},
			wantWriter: true,
		},
		{
			name:    "empty title",
			title:   "   ",
			author:  "Donovan",
			wantErr: services.ErrValidation,
		},
		{
			name:    "empty author",
			title:   "The Go Programming Language",
			author:  "",
			wantErr: services.ErrValidation,
		},
		{
			name:       "writer error",
			title:      "The Go Programming Language",
			author:     "Donovan",
			writerErr:  errors.New("db error"),
			wantWriter: true,
			wantErr:    errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantWriter {
				mockWriter.EXPECT().
					Create(gomock.Any(), tt.title, tt.author, nil, actorID).
					Return(tt.created, tt.writerErr)
			}

			book, err := svc.Create(context.Background(), actorID, tt.title, tt.author, nil)
			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				assert.Nil(t, book)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, actorID, book.CreatedBy)
			}
		})
	}
}

func TestBookService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookReader(ctrl)
	mockWriter := services.NewMockBookWriter(ctrl)

	svc := services.NewBookService(mockReader, mockWriter, nil)

	bookID := uuid.New()

	tests := []struct {
		name      string
		book      *models.BookDB
		readerErr error
		wantErr   error
	}{
		{
			name: "book found",
			book: &models.BookDB{BookID: bookID},
		},
		{
			name:    "book missing",
			wantErr: services.ErrNotFound,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByID(gomock.Any(), bookID).
				Return(tt.book, tt.readerErr)

			book, err := svc.GetByID(context.Background(), bookID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, book)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.book, book)
			}
		})
	}
}

func TestBookService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookReader(ctrl)
	mockWriter := services.NewMockBookWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := services.NewBookService(mockReader, mockWriter, mockKafka)

	ownerID := uuid.New()
	otherID := uuid.New()
	bookID := uuid.New()
	title := strPtr("Second Edition")
	empty := strPtr("  ")

	tests := []struct {
		name       string
		actorID    uuid.UUID
		title      *string
		existing   *models.BookDB
		readerErr  error
		updated    *models.BookDB
		wantWriter bool
		wantErr    error
	}{
		{
			name:       "owner updates",
			actorID:    ownerID,
			title:      title,
			existing:   &models.BookDB{BookID: bookID, CreatedBy: ownerID},
			updated:    &models.BookDB{BookID: bookID, Title: *title, CreatedBy: ownerID},
			wantWriter: true,
		},
		{
			name:    "book missing",
			actorID: ownerID,
			title:   title,
			wantErr: services.ErrNotFound,
		},
		{
			// a missing book is reported before any ownership comparison
			name:    "book missing for non-owner",
			actorID: otherID,
			title:   title,
			wantErr: services.ErrNotFound,
		},
		{
			name:     "non-owner rejected without mutation",
			actorID:  otherID,
			title:    title,
			existing: &models.BookDB{BookID: bookID, CreatedBy: ownerID},
			wantErr:  services.ErrForbidden,
		},
		{
			name:     "empty title rejected",
			actorID:  ownerID,
			title:    empty,
			existing: &models.BookDB{BookID: bookID, CreatedBy: ownerID},
			wantErr:  services.ErrValidation,
		},
		{
			name:      "reader error",
			actorID:   ownerID,
			title:     title,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByID(gomock.Any(), bookID).
				Return(tt.existing, tt.readerErr)

			if tt.wantWriter {
				mockWriter.EXPECT().
					Update(gomock.Any(), bookID, tt.title, nil, nil).
					Return(tt.updated, nil)
			}

			book, err := svc.Update(context.Background(), tt.actorID, bookID, tt.title, nil, nil)
			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				assert.Nil(t, book)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, book)
			}
		})
	}
}

func TestBookService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookReader(ctrl)
	mockWriter := services.NewMockBookWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := services.NewBookService(mockReader, mockWriter, mockKafka)

	ownerID := uuid.New()
	otherID := uuid.New()
	bookID := uuid.New()

	tests := []struct {
		name       string
		actorID    uuid.UUID
		existing   *models.BookDB
		writerErr  error
		wantWriter bool
		wantErr    error
	}{
		{
			name:       "owner deletes",
			actorID:    ownerID,
			existing:   &models.BookDB{BookID: bookID, CreatedBy: ownerID},
			wantWriter: true,
		},
		{
			name:    "book missing",
			actorID: ownerID,
			wantErr: services.ErrNotFound,
		},
		{
			name:     "non-owner rejected without mutation",
			actorID:  otherID,
			existing: &models.BookDB{BookID: bookID, CreatedBy: ownerID},
			wantErr:  services.ErrForbidden,
		},
		{
			name:       "writer error",
			actorID:    ownerID,
			existing:   &models.BookDB{BookID: bookID, CreatedBy: ownerID},
			writerErr:  errors.New("db error"),
			wantWriter: true,
			wantErr:    errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByID(gomock.Any(), bookID).
				Return(tt.existing, nil)

			if tt.wantWriter {
				mockWriter.EXPECT().
					Delete(gomock.Any(), bookID).
					Return(tt.writerErr)
			}

			err := svc.Delete(context.Background(), tt.actorID, bookID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
