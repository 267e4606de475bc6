package attendance

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worklens/attendance-backend-go/internal/pkg/validator"
)

type fakeUpload struct {
	*bytes.Reader
}

func (fakeUpload) Close() error { return nil }

func importRequest(filename string, size int64) ImportRequest {
	return ImportRequest{
		File:       fakeUpload{bytes.NewReader([]byte("content"))},
		FileHeader: &multipart.FileHeader{Filename: filename, Size: size},
	}
}

func TestImportRequestValidate_Success(t *testing.T) {
	req := importRequest("attendance.xlsx", 1024)
	assert.NoError(t, req.Validate())
}

func TestImportRequestValidate_MissingFile(t *testing.T) {
	req := ImportRequest{}
	err := req.Validate()

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestImportRequestValidate_InvalidFileType(t *testing.T) {
	for _, filename := range []string{"attendance.csv", "attendance.xls", "attendance"} {
		req := importRequest(filename, 1024)
		assert.ErrorIs(t, req.Validate(), ErrInvalidFileType, "filename %q", filename)
	}
}

func TestImportRequestValidate_FileTooLarge(t *testing.T) {
	req := importRequest("attendance.xlsx", 11<<20)
	err := req.Validate()

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}
