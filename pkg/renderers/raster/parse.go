package raster

import (
	"strconv"
	"strings"
)

// parseColor accepts #rgb, #rgba, #rrggbb and #rrggbbaa. "none",
// "transparent" and anything else are reported as not paintable.
func parseColor(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "#") {
		return "", false
	}
	hex := v[1:]
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return "", false
	}
	for _, c := range hex {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return "", false
		}
	}
	return v, true
}

// parseTranslate reads "translate(x, y)", "translate(x y)" or
// "translate(x)".
func parseTranslate(value string) (float64, float64, bool) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "translate(") || !strings.HasSuffix(v, ")") {
		return 0, 0, false
	}
	args := strings.FieldsFunc(v[len("translate("):len(v)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(args) == 0 || len(args) > 2 {
		return 0, 0, false
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, false
	}
	var y float64
	if len(args) == 2 {
		if y, err = strconv.ParseFloat(args[1], 64); err != nil {
			return 0, 0, false
		}
	}
	return x, y, true
}
