package seed

import (
	"fmt"
	"github.com/yehezkiel0/staycation-seedfix/pkg/debug"
	"regexp"
)

var areaPattern = regexp.MustCompile(`(?m)^([ \t]+)area: (\d+)`)

// NormalizeAreas expands every bare "area: <n>" assignment into a nested
// size/unit block. Converted blocks no longer match the pattern.
func NormalizeAreas(content, unit string) string {
	if debug.IsEnabled() {
		fmt.Println("Matched", len(areaPattern.FindAllStringIndex(content, -1)), "area field(s)")
	}

	return areaPattern.ReplaceAllString(content,
		"${1}area: {\n${1}  size: ${2},\n${1}  unit: \""+unit+"\"\n${1}}")
}
