package generator

import (
	"strings"
	"unicode"
)

// Markers treated as a strong signal that a line is a commit message.
// They are a parsing hint, not a format validator.
var typeMarkers = []string{"feat(", "fix(", "docs(", "style(", "refactor("}

// ParseResponse extracts up to count commit messages from an unstructured
// model reply. The strategies are ranked: numbered/marked lines first, then
// any line with a colon, then the first non-empty line. It never fails;
// malformed input degrades to fewer (possibly zero) messages.
func ParseResponse(response string, count int) []string {
	if count <= 0 {
		return nil
	}

	lines := normalizeLines(response)

	var messages []string
	if count > 1 {
		messages = collectMarkedLines(lines)
	}
	if len(messages) == 0 {
		messages = collectColonLines(lines, count)
	}
	if len(messages) == 0 && len(lines) > 0 {
		messages = []string{stripListPrefix(lines[0])}
	}

	if len(messages) > count {
		messages = messages[:count]
	}
	return messages
}

func normalizeLines(response string) []string {
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// collectMarkedLines keeps lines that look like numbered list entries with a
// colon, or that contain a conventional-commit type marker anywhere.
func collectMarkedLines(lines []string) []string {
	var messages []string
	for _, line := range lines {
		if isNumberedWithColon(line) || containsTypeMarker(line) {
			messages = append(messages, stripListPrefix(line))
		}
	}
	return messages
}

// collectColonLines keeps every line containing a colon, in order, stopping
// once count messages are found.
func collectColonLines(lines []string, count int) []string {
	var messages []string
	for _, line := range lines {
		if strings.Contains(line, ":") {
			messages = append(messages, stripListPrefix(line))
			if len(messages) >= count {
				break
			}
		}
	}
	return messages
}

func isNumberedWithColon(line string) bool {
	return len(line) > 0 && line[0] >= '0' && line[0] <= '9' && strings.Contains(line, ":")
}

func containsTypeMarker(line string) bool {
	for _, marker := range typeMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// stripListPrefix removes a leading list ordinal like "1." or "2)" along
// with surrounding spaces.
func stripListPrefix(line string) string {
	stripped := strings.TrimLeftFunc(line, func(r rune) bool {
		return unicode.IsDigit(r) || r == '.' || r == ')' || r == ' '
	})
	return strings.TrimSpace(stripped)
}
