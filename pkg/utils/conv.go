package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseStr returns "" for nil and the printed form of anything else.
func ParseStr(rawVal interface{}) string {
	if rawVal == nil {
		return ""
	}

	if rawStr, ok := rawVal.(string); ok {
		return rawStr
	}

	return fmt.Sprint(rawVal)
}

// ParseFloat coerces numbers and numeric text to float64.
// NaN, infinities and text that does not parse are reported as not ok.
func ParseFloat(rawFloat interface{}) (float64, bool) {
	var val float64

	switch v := rawFloat.(type) {
	case nil:
		return 0, false
	case float64:
		val = v
	case float32:
		val = float64(v)
	case int:
		val = float64(v)
	case int64:
		val = float64(v)
	case int32:
		val = float64(v)
	case uint:
		val = float64(v)
	case uint64:
		val = float64(v)
	case bool:
		return 0, false
	default:
		raw := strings.TrimSpace(fmt.Sprint(rawFloat))
		raw = strings.ReplaceAll(raw, ",", "")
		fl64, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false
		}
		val = fl64
	}

	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false
	}

	return val, true
}
