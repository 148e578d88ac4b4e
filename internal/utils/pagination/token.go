package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// EncodeToken creates a base64 encoded keyset token from the date and id of the
// last row of a page ordered by date desc, id desc.
func EncodeToken(date time.Time, id int64) string {
	tokenStr := fmt.Sprintf("%s|%d", date.Format(dateFormat), id)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into the date and id.
func DecodeToken(token string) (time.Time, int64, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}

	return date, id, nil
}
