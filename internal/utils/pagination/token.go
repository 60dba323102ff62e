package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const idCursorPrefix = "id"

// EncodeIDCursor creates an opaque base64 token pointing just past the row with the given id.
// Listings are newest first, so the next page holds ids smaller than this one.
func EncodeIDCursor(id int64) string {
	tokenStr := fmt.Sprintf("%s|%d", idCursorPrefix, id)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeIDCursor parses a token produced by EncodeIDCursor.
func DecodeIDCursor(token string) (int64, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != idCursorPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid pagination token format (id must be positive)")
	}
	return id, nil
}
