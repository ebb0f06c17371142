package components

import (
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultPalette is cycled by index when no theme token matches.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ThemePalette builds a ColorFunc from theme tokens. A series resolves the
// token "series.<key>", then "series.<index>", then the fallback colours
// cycled by index (DefaultPalette when none are given).
func ThemePalette(cfg *theme.RendererConfig, fallback ...string) ColorFunc {
	var tokens map[string]string
	if cfg != nil {
		tokens = cfg.Tokens
	}
	colors := make([]string, 0, len(fallback))
	for _, c := range fallback {
		if c = strings.TrimSpace(c); c != "" {
			colors = append(colors, c)
		}
	}
	if len(colors) == 0 {
		colors = DefaultPalette
	}

	return func(key string, index int) string {
		if v := strings.TrimSpace(tokens["series."+key]); v != "" {
			return v
		}
		if v := strings.TrimSpace(tokens["series."+strconv.Itoa(index)]); v != "" {
			return v
		}
		if index < 0 {
			index = -index
		}
		return colors[index%len(colors)]
	}
}
