package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akomarov/bookshelf/internal/models"
	"github.com/akomarov/bookshelf/internal/services"
)

func TestBookPdfService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookPdfReader(ctrl)
	mockWriter := services.NewMockBookPdfWriter(ctrl)
	mockBooks := services.NewMockBookGetter(ctrl)
	mockFiles := services.NewMockFileStore(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := services.NewBookPdfService(mockReader, mockWriter, mockBooks, mockFiles, mockKafka)

	actorID := uuid.New()
	bookID := uuid.New()
	pdfID := uuid.New()
	content := "%PDF-1.4 fake body"

	t.Run("wrong content type", func(t *testing.T) {
		pdf, err := svc.Upload(context.Background(), actorID, nil, "a.pdf", "text/plain", strings.NewReader(content))
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Nil(t, pdf)
	})

	t.Run("content is not a pdf", func(t *testing.T) {
		pdf, err := svc.Upload(context.Background(), actorID, nil, "a.pdf", "application/pdf", strings.NewReader("<html>nope</html>"))
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Nil(t, pdf)
	})

	t.Run("empty filename", func(t *testing.T) {
		pdf, err := svc.Upload(context.Background(), actorID, nil, "  ", "application/pdf", strings.NewReader(content))
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Nil(t, pdf)
	})

	t.Run("unknown book reference", func(t *testing.T) {
		mockBooks.EXPECT().GetByID(gomock.Any(), bookID).Return(nil, nil)

		pdf, err := svc.Upload(context.Background(), actorID, &bookID, "a.pdf", "application/pdf", strings.NewReader(content))
		assert.ErrorIs(t, err, services.ErrInvalidReference)
		assert.Nil(t, pdf)
	})

	t.Run("successful upload preserves content", func(t *testing.T) {
		mockBooks.EXPECT().GetByID(gomock.Any(), bookID).Return(&models.BookDB{BookID: bookID}, nil)

		mockFiles.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(r io.Reader) (string, error) {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, content, string(data))
				return "stored.pdf", nil
			})

		mockWriter.EXPECT().
			Create(gomock.Any(), &bookID, "a.pdf", "stored.pdf", actorID).
			Return(&models.BookPdfDB{PdfID: pdfID, UploadedBy: actorID}, nil)

		pdf, err := svc.Upload(context.Background(), actorID, &bookID, "a.pdf", "application/pdf", strings.NewReader(content))
		assert.NoError(t, err)
		assert.Equal(t, actorID, pdf.UploadedBy)
	})

	t.Run("metadata failure removes stored file", func(t *testing.T) {
		mockFiles.EXPECT().Save(gomock.Any()).Return("orphan.pdf", nil)
		mockWriter.EXPECT().
			Create(gomock.Any(), nil, "a.pdf", "orphan.pdf", actorID).
			Return(nil, errors.New("db error"))
		mockFiles.EXPECT().Remove("orphan.pdf").Return(nil)

		pdf, err := svc.Upload(context.Background(), actorID, nil, "a.pdf", "application/pdf", strings.NewReader(content))
		assert.EqualError(t, err, "db error")
		assert.Nil(t, pdf)
	})
}

func TestBookPdfService_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookPdfReader(ctrl)
	mockWriter := services.NewMockBookPdfWriter(ctrl)
	mockBooks := services.NewMockBookGetter(ctrl)
	mockFiles := services.NewMockFileStore(ctrl)

	svc := services.NewBookPdfService(mockReader, mockWriter, mockBooks, mockFiles, nil)

	pdfID := uuid.New()
	stored := &models.BookPdfDB{PdfID: pdfID, Filename: "a.pdf", Filepath: "stored.pdf"}

	t.Run("successful download", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), pdfID).Return(stored, nil)
		mockFiles.EXPECT().Open("stored.pdf").Return(io.NopCloser(strings.NewReader("%PDF-1.4")), nil)

		pdf, f, err := svc.Download(context.Background(), pdfID)
		assert.NoError(t, err)
		assert.Equal(t, "a.pdf", pdf.Filename)

		data, err := io.ReadAll(f)
		assert.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))
		f.Close()
	})

	t.Run("pdf missing", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), pdfID).Return(nil, nil)

		pdf, f, err := svc.Download(context.Background(), pdfID)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Nil(t, pdf)
		assert.Nil(t, f)
	})

	t.Run("file open error", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), pdfID).Return(stored, nil)
		mockFiles.EXPECT().Open("stored.pdf").Return(nil, errors.New("io error"))

		_, _, err := svc.Download(context.Background(), pdfID)
		assert.EqualError(t, err, "io error")
	})
}

func TestBookPdfService_UpdateFilename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookPdfReader(ctrl)
	mockWriter := services.NewMockBookPdfWriter(ctrl)
	mockBooks := services.NewMockBookGetter(ctrl)
	mockFiles := services.NewMockFileStore(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := services.NewBookPdfService(mockReader, mockWriter, mockBooks, mockFiles, mockKafka)

	uploaderID := uuid.New()
	otherID := uuid.New()
	pdfID := uuid.New()

	tests := []struct {
		name       string
		actorID    uuid.UUID
		filename   string
		existing   *models.BookPdfDB
		updated    *models.BookPdfDB
		wantWriter bool
		wantErr    error
	}{
		{
			name:       "uploader renames",
			actorID:    uploaderID,
			filename:   "new.pdf",
			existing:   &models.BookPdfDB{PdfID: pdfID, UploadedBy: uploaderID},
			updated:    &models.BookPdfDB{PdfID: pdfID, Filename: "new.pdf", UploadedBy: uploaderID},
			wantWriter: true,
		},
		{
			name:     "pdf missing",
			actorID:  uploaderID,
			filename: "new.pdf",
			wantErr:  services.ErrNotFound,
		},
		{
			name:     "non-uploader rejected without mutation",
			actorID:  otherID,
			filename: "new.pdf",
			existing: &models.BookPdfDB{PdfID: pdfID, UploadedBy: uploaderID},
			wantErr:  services.ErrForbidden,
		},
		{
			name:     "empty filename rejected",
			actorID:  uploaderID,
			filename: "   ",
			existing: &models.BookPdfDB{PdfID: pdfID, UploadedBy: uploaderID},
			wantErr:  services.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByID(gomock.Any(), pdfID).
				Return(tt.existing, nil)

			if tt.wantWriter {
				mockWriter.EXPECT().
					UpdateFilename(gomock.Any(), pdfID, tt.filename).
					Return(tt.updated, nil)
			}

			pdf, err := svc.UpdateFilename(context.Background(), tt.actorID, pdfID, tt.filename)
			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				assert.Nil(t, pdf)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.updated, pdf)
			}
		})
	}
}

func TestBookPdfService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookPdfReader(ctrl)
	mockWriter := services.NewMockBookPdfWriter(ctrl)
	mockBooks := services.NewMockBookGetter(ctrl)
	mockFiles := services.NewMockFileStore(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := services.NewBookPdfService(mockReader, mockWriter, mockBooks, mockFiles, mockKafka)

	uploaderID := uuid.New()
	otherID := uuid.New()
	pdfID := uuid.New()
	stored := &models.BookPdfDB{PdfID: pdfID, Filepath: "stored.pdf", UploadedBy: uploaderID}

	t.Run("uploader deletes, file removed", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), pdfID).Return(stored, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), pdfID).Return(nil)
		mockFiles.EXPECT().Remove("stored.pdf").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), uploaderID, pdfID))
	})

	t.Run("blob removal failure does not fail the delete", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), pdfID).Return(stored, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), pdfID).Return(nil)
		mockFiles.EXPECT().Remove("stored.pdf").Return(errors.New("io error"))

		assert.NoError(t, svc.Delete(context.Background(), uploaderID, pdfID))
	})

	t.Run("pdf missing", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), pdfID).Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), uploaderID, pdfID), services.ErrNotFound)
	})

	t.Run("non-uploader rejected without mutation", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), pdfID).Return(stored, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), otherID, pdfID), services.ErrForbidden)
	})
}
