package taskfile

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	titlePattern      = regexp.MustCompile(`(?m)^# (.+)$`)
	durationPattern   = regexp.MustCompile(`\*\*Estimated Duration\*\*:\s*(\d+)h`)
	phasePattern      = regexp.MustCompile(`\*\*Phase\*\*:\s*(\d+)`)
	priorityPattern   = regexp.MustCompile(`\*\*Priority\*\*:\s*([\p{L}\p{N}_]+)`)
	complexityPattern = regexp.MustCompile(`\*\*Complexity\*\*:\s*([\p{L}\p{N}_]+)`)
	wavePattern       = regexp.MustCompile(`\*\*Wave Context\*\*:.*?Wave (\d+)`)

	taskLinePattern      = regexp.MustCompile(`(?m)- \[ \] (.+?)(?:\((\d+)m\))?(?: - Agent: (.+))?$`)
	checklistLinePattern = regexp.MustCompile(`(?m)- \[ \] (.+)$`)
	dependsOnPattern     = regexp.MustCompile(`(?m)- Depends on: (.+)$`)
)

const (
	epicHeading = "## Epic: "
	boldLabel   = "\n\n**"
)

// firstString returns the first capture group of re in content.
func firstString(re *regexp.Regexp, content string) (string, bool) {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// firstInt returns the first capture group of re parsed as an int, or nil
// when the marker is absent or the number does not fit.
func firstInt(re *regexp.Regexp, content string) *int {
	s, ok := firstString(re, content)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// section returns the body of a "## <heading>" section: the text after the
// heading and a blank line, up to the next level-two heading or end of text.
func section(content, heading string) (string, bool) {
	marker := "## " + heading + "\n\n"
	start := strings.Index(content, marker)
	if start < 0 {
		return "", false
	}
	body := content[start+len(marker):]
	if body == "" {
		return "", false
	}
	if end := strings.Index(body[1:], "\n## "); end >= 0 {
		body = body[:end+1]
	}
	return body, true
}

// description returns the paragraph following the "## Epic:" heading. It ends
// at the first blank line followed by a bold label, or at end of text.
func description(content string) string {
	start := strings.Index(content, epicHeading)
	if start < 0 {
		return ""
	}
	rest := content[start+len(epicHeading):]
	if rest == "" {
		return ""
	}
	gap := strings.Index(rest[1:], "\n\n")
	if gap < 0 {
		return ""
	}
	body := rest[1+gap+2:]
	if body == "" {
		return ""
	}
	if end := strings.Index(body[1:], boldLabel); end >= 0 {
		body = body[:end+1]
	}
	return strings.TrimSpace(body)
}

// splitDependencies turns "a, b, c" into trimmed names, one per
// comma-separated token. Empty tokens are kept as empty names.
func splitDependencies(line string) []string {
	toks := strings.Split(line, ",")
	deps := make([]string, 0, len(toks))
	for _, tok := range toks {
		deps = append(deps, strings.TrimSpace(tok))
	}
	return deps
}
