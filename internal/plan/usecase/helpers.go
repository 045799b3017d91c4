package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"bbip/internal/plan"
	"bbip/pkg/datemath"
)

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// checkText rejects blank text and text longer than plan.MaxTextRunes.
func checkText(text string) error {
	if strings.TrimSpace(text) == "" {
		return plan.ErrEmptyInput
	}
	if utf8.RuneCountInString(text) > plan.MaxTextRunes {
		return plan.ErrTextTooLong
	}
	return nil
}

func validClock(s string) bool {
	return clockPattern.MatchString(s)
}

// cleanTitle trims the title and reports whether it fits the stored limit.
func cleanTitle(title string) (string, bool) {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > plan.MaxTitleRunes {
		return title, false
	}
	return title, true
}

// truncateTitle trims and cuts the title to the stored limit.
func truncateTitle(title string) string {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) <= plan.MaxTitleRunes {
		return title
	}
	return strings.TrimSpace(string([]rune(title)[:plan.MaxTitleRunes]))
}

// resolveDate accepts YYYY-MM-DD or any expression datemath understands
// ("tomorrow", "내일", "in 2 days", "next monday").
func (uc *implUseCase) resolveDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if datemath.ValidDate(s) {
		return s, true
	}
	d, err := uc.dates.ResolveDate(s, uc.now())
	return d, err == nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFence.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
