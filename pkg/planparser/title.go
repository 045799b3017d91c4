package planparser

import (
	"regexp"
	"strings"
)

// rule is one rewrite step of the title pipeline.
type rule struct {
	pattern *regexp.Regexp
	repl    string
}

func (r rule) apply(s string) string {
	return r.pattern.ReplaceAllString(s, r.repl)
}

// cleanupRules run in order; later rules rely on earlier ones having removed time words.
var cleanupRules = []rule{
	{regexp.MustCompile(`오전|오후|아침|저녁|밤|새벽`), ""},
	{regexp.MustCompile(`(한|두|세|네|다섯|여섯|일곱|여덟|아홉|열한|열두|열|하나|둘|셋|넷)\s*시\s*(반)?`), ""},
	{regexp.MustCompile(`\d{1,2}\s*시\s*(반)?`), ""},
	{regexp.MustCompile(`\d{1,2}\s*분`), ""},
	{regexp.MustCompile(`\d{1,2}:\d{2}`), ""},
	{regexp.MustCompile(`^(나는|저는|나|저)\s*`), ""},
	{regexp.MustCompile(`^(오늘|내일|모레)\s*`), ""},
	{regexp.MustCompile(`(에|까지|부터|에서|으로|로|을|를|이|가|은|는|도|만)\s*$`), ""},
	{regexp.MustCompile(`(있어|있고|해야\s*해|해야\s*하고|해야\s*하는|해야\s*돼|해야\s*되는|해야\s*될|있습니다|거야|할\s*거야)$`), ""},
	{regexp.MustCompile(`(제출해야\s*하는)\s*`), ""},
	{regexp.MustCompile(`(까지\s*(제출|완료|마감)해야\s*(하는|할|되는))\s*`), ""},
}

// tidyRules collapse runs of whitespace.
var tidyRules = []rule{
	{regexp.MustCompile(`\s{2,}`), " "},
}

// edgeParticleRules drop one dangling particle on each side.
var edgeParticleRules = []rule{
	{regexp.MustCompile(`^(에|의|와|과|에서)\s+`), ""},
	{regexp.MustCompile(`\s+(에|을|를|이|가)$`), ""},
}

var (
	// "열두시까지 제출해야 하는 PPT" -> "PPT 제출"
	deadlineObject = regexp.MustCompile(`까지\s*(제출|완료|마감)해야\s*(하는|할|되는)\s+(.+?)(?:\s*(?:있|해야|$))`)

	// "5시까지 보고서 완료" -> "보고서 제출"
	untilObject = regexp.MustCompile(`까지\s+(.+?)(?:\s+(?:제출|완료|마감))`)

	itemTimeRules = []rule{
		{regexp.MustCompile(`\d{1,2}\s*시\s*(반)?`), ""},
		{regexp.MustCompile(`\d{1,2}\s*분`), ""},
	}

	lowerASCIIStart = regexp.MustCompile(`^[a-z]`)
)

// ExtractTitle strips time words, pronouns, relative-day words, particles and auxiliary endings from a clause.
// Deadline phrasings are rewritten to "<item> <verb>". An empty result means the clause carries no plan.
func ExtractTitle(clause string) string {
	title := clause
	for _, r := range cleanupRules {
		title = r.apply(title)
	}

	if m := deadlineObject.FindStringSubmatch(clause); m != nil {
		return strings.TrimSpace(m[3]) + " " + m[1]
	}

	if m := untilObject.FindStringSubmatch(clause); m != nil {
		item := m[1]
		for _, r := range itemTimeRules {
			item = r.apply(item)
		}
		if item = strings.TrimSpace(item); item != "" {
			// Always "제출", whichever verb matched.
			return item + " 제출"
		}
	}

	for _, r := range tidyRules {
		title = r.apply(title)
	}
	title = strings.TrimSpace(title)

	for _, r := range edgeParticleRules {
		title = r.apply(title)
	}
	return strings.TrimSpace(title)
}

// capitalize upper-cases a leading ASCII letter so English titles read naturally.
func capitalize(title string) string {
	if !lowerASCIIStart.MatchString(title) {
		return title
	}
	return strings.ToUpper(title[:1]) + title[1:]
}
