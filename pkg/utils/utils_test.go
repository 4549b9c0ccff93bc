package utils

import (
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, id, 26)

	_, err = ulid.Parse(id)
	assert.NoError(t, err)
}

func TestNewULIDFromTimestamp_Ordering(t *testing.T) {
	u := New()

	earlier, err := u.NewULIDFromTimestamp(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	later, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)

	assert.Less(t, earlier, later)
}

func imageFileHeader(size int64, contentType string) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{
		Filename: "cover.png",
		Size:     size,
		Header:   header,
	}
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	assert.Error(t, u.ValidateImageFile(nil))
	assert.NoError(t, u.ValidateImageFile(imageFileHeader(1024, "image/png")))
	assert.Error(t, u.ValidateImageFile(imageFileHeader(6*1024*1024, "image/png")))
	assert.Error(t, u.ValidateImageFile(imageFileHeader(1024, "application/pdf")))
}
