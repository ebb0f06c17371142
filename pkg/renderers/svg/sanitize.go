package svg

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	chartPolicyOnce sync.Once
	chartPolicy     *bluemonday.Policy
)

// bluemonday tokenises as HTML and lowercases names; SVG names are
// case-sensitive, so allowlisted mixed-case names are restored afterwards.
var (
	mixedCaseElements = map[string]string{
		"clippath": "clipPath",
	}
	mixedCaseAttrs = map[string]string{
		"clippathunits": "clipPathUnits",
	}
	tagPattern = regexp.MustCompile(`<(/?)([a-z][a-z0-9-]*)([^>]*)>`)
)

func sanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return restoreCase(strings.TrimSpace(chartSanitizer().Sanitize(trimmed)))
}

func restoreCase(markup string) string {
	return tagPattern.ReplaceAllStringFunc(markup, func(tag string) string {
		m := tagPattern.FindStringSubmatch(tag)
		name, rest := m[2], m[3]
		if camel, ok := mixedCaseElements[name]; ok {
			name = camel
		}
		for lower, camel := range mixedCaseAttrs {
			rest = strings.ReplaceAll(rest, " "+lower+"=", " "+camel+"=")
		}
		return "<" + m[1] + name + rest + ">"
	})
}

func chartSanitizer() *bluemonday.Policy {
	chartPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "text", "tspan", "title", "desc", "defs", "clipPath",
		)
		policy.AllowNoAttrs().OnElements("g", "defs", "text", "tspan", "title", "desc")

		policy.AllowAttrs(
			"class", "fill", "fill-opacity", "fill-rule", "stroke", "stroke-width",
			"stroke-opacity", "stroke-linecap", "stroke-linejoin", "stroke-dasharray",
			"opacity", "transform", "clip-path", "role", "aria-label", "aria-hidden",
		).Globally()
		policy.AllowDataAttributes()

		policy.AllowAttrs(
			"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
			"points", "rx", "ry", "width", "height", "dx", "dy", "text-anchor",
		).OnElements("path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "text", "tspan")

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs", "g")

		chartPolicy = policy
	})
	return chartPolicy
}
