package seed

import (
	"fmt"
	"github.com/gosimple/slug"
	"github.com/yehezkiel0/staycation-seedfix/pkg/config"
	"github.com/yehezkiel0/staycation-seedfix/pkg/debug"
	"regexp"
	"strings"
)

// InjectSlugs is not idempotent: a second run inserts the slug lines again.
func InjectSlugs(content string, entries []config.SlugEntry) string {
	for _, entry := range entries {
		pattern := titlePattern(entry.Title)
		replacement := "${1}${2}\n${1}slug: \"" + slugFor(entry) + "\",\n"

		if debug.IsEnabled() {
			fmt.Println("Matched", len(pattern.FindAllStringIndex(content, -1)), "title line(s) for", entry.Title)
		}

		content = pattern.ReplaceAllString(content, replacement)
	}

	return content
}

// InjectSlugsIfAbsent skips title lines already followed by a slug line.
func InjectSlugsIfAbsent(content string, entries []config.SlugEntry) string {
	for _, entry := range entries {
		pattern := guardedTitlePattern(entry.Title)
		line := "slug: \"" + slugFor(entry) + "\",\n"

		content = pattern.ReplaceAllStringFunc(content, func(match string) string {
			if strings.Contains(match, "slug:") {
				return match
			}

			indent := pattern.FindStringSubmatch(match)[1]
			return match + indent + line
		})
	}

	return content
}

func DeriveSlug(title string) string {
	return slug.Make(title)
}

func slugFor(entry config.SlugEntry) string {
	if entry.Slug != "" {
		return entry.Slug
	}

	return DeriveSlug(entry.Title)
}

func titlePattern(title string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^([ \t]*)(title: "` + regexp.QuoteMeta(title) + `",)\n`)
}

func guardedTitlePattern(title string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^([ \t]*)title: "` + regexp.QuoteMeta(title) + `",\n(?:[ \t]*slug: "[^"]*",\n)?`)
}
