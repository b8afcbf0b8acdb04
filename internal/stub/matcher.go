package stub

import (
	"regexp"
	"strings"
)

// paramRegex matches {name} placeholders in a path template
var paramRegex = regexp.MustCompile(`\{([^}]+)\}`)

// ExtractParams returns the placeholder names found in a path template,
// in order of first occurrence. The template itself is the source of
// truth; separately declared parameters are ignored.
func ExtractParams(template string) []string {
	var params []string
	for _, match := range paramRegex.FindAllStringSubmatch(template, -1) {
		params = append(params, match[1])
	}
	return params
}

// CompileTemplate converts a path template like /users/{id} into an
// anchored regular expression matching concrete request paths. Each
// declared placeholder becomes a single-segment wildcard; everything
// else is matched literally, so templates containing regex
// metacharacters (e.g. /files/report.pdf) only match themselves.
func CompileTemplate(template string, paramNames []string) (*regexp.Regexp, error) {
	pattern := template

	// Substitute placeholders with a NUL sentinel that QuoteMeta
	// leaves alone, so literal escaping cannot clobber the wildcards.
	for _, name := range paramNames {
		pattern = strings.ReplaceAll(pattern, "{"+name+"}", "\x00")
	}

	pattern = regexp.QuoteMeta(pattern)
	pattern = strings.ReplaceAll(pattern, "\x00", "[^/]+")

	return regexp.Compile("^" + pattern + "$")
}
