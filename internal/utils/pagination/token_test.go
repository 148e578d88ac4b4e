package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	token := EncodeToken(date, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, date, decodedDate, "Date should match after decode")
	assert.Equal(t, int64(42), decodedID, "ID should match after decode")
}

func TestEncodeToken_DropsTimeOfDay(t *testing.T) {
	token := EncodeToken(time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC), 1)

	decodedDate, _, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), decodedDate)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2024-01-01"))
	_, _, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("01/01/2024|5"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	badID := base64.URLEncoding.EncodeToString([]byte("2024-01-01|abc"))
	_, _, err = DecodeToken(badID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")
}
