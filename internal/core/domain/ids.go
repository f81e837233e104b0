package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeTenantID coerces an id from any source into its canonical string form.
// Numeric ids lose a trailing ".0" so that 10, 10.0 and "10.0" all map to "10".
func NormalizeTenantID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return normalizeIDString(id)
	case json.Number:
		return normalizeIDString(id.String())
	case float64:
		return formatFloatID(id)
	case float32:
		return formatFloatID(float64(id))
	case int:
		return strconv.Itoa(id)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	case int64:
		return strconv.FormatInt(id, 10)
	case uint:
		return strconv.FormatUint(uint64(id), 10)
	case uint32:
		return strconv.FormatUint(uint64(id), 10)
	case uint64:
		return strconv.FormatUint(id, 10)
	case fmt.Stringer:
		return normalizeIDString(id.String())
	default:
		return normalizeIDString(fmt.Sprint(id))
	}
}

func formatFloatID(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func normalizeIDString(s string) string {
	s = strings.TrimSpace(s)
	dot := strings.IndexByte(s, '.')
	if dot <= 0 {
		return s
	}
	intPart, frac := s[:dot], s[dot+1:]
	if frac == "" || strings.Trim(frac, "0") != "" || !isDigits(intPart) {
		return s
	}
	return intPart
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
