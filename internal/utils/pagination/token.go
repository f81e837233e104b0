package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultLimit is the page size used when the caller does not ask for one.
const DefaultLimit = 20

// EncodeToken creates an opaque cursor from the id and sort key of the last item on a page.
// The id comes first so a sort key containing the separator still round-trips.
func EncodeToken(id, sortKey string) string {
	return base64.URLEncoding.EncodeToString([]byte(id + "|" + sortKey))
}

// DecodeToken parses a cursor produced by EncodeToken back into id and sort key.
func DecodeToken(token string) (string, string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", fmt.Errorf("invalid pagination token format (split)")
	}
	return parts[0], parts[1], nil
}

// Limit clamps a requested page size to [1, max], using DefaultLimit for zero.
func Limit(requested, max int) int {
	switch {
	case requested <= 0:
		return DefaultLimit
	case requested > max:
		return max
	default:
		return requested
	}
}
