package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/akomarov/bookshelf/internal/models"
	"github.com/akomarov/bookshelf/internal/services"
)

func strPtr(s string) *string { return &s }

func TestUserService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()

	tests := []struct {
		name      string
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name: "user found",
			user: &models.UserDB{UserID: userID},
		},
		{
			name:    "user missing",
			user:    nil,
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
				GetByID(gomock.Any(), userID).
				Return(tt.user, tt.readerErr)

			user, err := svc.GetByID(context.Background(), userID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter)

	users := []models.UserDB{{UserID: uuid.New()}, {UserID: uuid.New()}}

	mockReader.EXPECT().List(gomock.Any()).Return(users, nil)

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter)

	email := strPtr("alice@example.com")
	created := &models.UserDB{UserID: uuid.New(), Email: email}

	tests := []struct {
		name      string
		user      *models.UserDB
		writerErr error
		wantErr   error
	}{
		{
			name: "successful creation",
			user: created,
		},
		{
			name:      "duplicate email",
			writerErr: &pgconn.PgError{Code: "23505"},
			wantErr:   services.ErrConflict,
		},
		{
			name:      "writer error",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Create(gomock.Any(), nil, nil, email, nil, nil).
				Return(tt.user, tt.writerErr)

			user, err := svc.Create(context.Background(), nil, nil, email, nil, nil)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
			}
		})
	}
}

func TestUserService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewUserService(mockReader, mockWriter)

	userID := uuid.New()
	otherID := uuid.New()
	displayName := strPtr("Alice B.")

	tests := []struct {
		name       string
		actorID    uuid.UUID
		existing   *models.UserDB
		readerErr  error
		updated    *models.UserDB
		writerErr  error
		wantWriter bool
		wantErr    error
	}{
		{
			name:       "self update",
			actorID:    userID,
			existing:   &models.UserDB{UserID: userID},
			updated:    &models.UserDB{UserID: userID, DisplayName: displayName},
			wantWriter: true,
		},
		{
			name:     "user missing",
			actorID:  userID,
			existing: nil,
			wantErr:  services.ErrNotFound,
		},
		{
			name:     "another user's profile",
			actorID:  otherID,
			existing: &models.UserDB{UserID: userID},
			wantErr:  services.ErrForbidden,
		},
		{
			name:      "reader error",
			actorID:   userID,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:       "writer error",
			actorID:    userID,
			existing:   &models.UserDB{UserID: userID},
			writerErr:  errors.New("db error"),
			wantWriter: true,
			wantErr:    errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByID(gomock.Any(), userID).
				Return(tt.existing, tt.readerErr)

			if tt.wantWriter {
				mockWriter.EXPECT().
					Update(gomock.Any(), userID, displayName, nil, nil).
					Return(tt.updated, tt.writerErr)
			}

			user, err := svc.Update(context.Background(), tt.actorID, userID, displayName, nil, nil)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, user)
			}
		})
	}
}
