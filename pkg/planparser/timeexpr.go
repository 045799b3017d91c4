package planparser

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	koreanHourExpr = regexp.MustCompile(`(한|두|세|네|다섯|여섯|일곱|여덟|아홉|열한|열두|열|하나|둘|셋|넷)\s*시`)
	digitHourExpr  = regexp.MustCompile(`(\d{1,2})\s*시`)
	colonTimeExpr  = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	minuteExpr     = regexp.MustCompile(`(\d{1,2})\s*분`)
	halfHourExpr   = regexp.MustCompile(`시\s*반`)

	pmMarker = regexp.MustCompile(`오후|저녁|밤`)
	amMarker = regexp.MustCompile(`오전|아침|새벽`)
)

// ExtractTime returns the clause's time of day as "HH:MM".
// The second result is false when the clause names no hour, or when the named time does not exist on a clock.
func ExtractTime(clause string) (string, bool) {
	hour, minute, ok := findHour(clause)
	if !ok {
		return "", false
	}

	if m := minuteExpr.FindStringSubmatch(clause); m != nil {
		minute, _ = strconv.Atoi(m[1])
	}
	if halfHourExpr.MatchString(clause) {
		minute = 30
	}

	isPM := pmMarker.MatchString(clause)
	isAM := amMarker.MatchString(clause)

	if isPM && hour < 12 {
		hour += 12
	}
	if isAM && hour == 12 {
		hour = 0
	}
	// A bare 1..6 in casual scheduling almost always means the afternoon.
	if !isAM && !isPM && hour >= 1 && hour <= 6 {
		hour += 12
	}

	if hour > 23 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf(timeFormat, hour, minute), true
}

// findHour applies the hour patterns in priority order: Korean numeral, Arabic numeral, then H:MM.
func findHour(clause string) (hour, minute int, ok bool) {
	if m := koreanHourExpr.FindStringSubmatch(clause); m != nil {
		return koreanHours[m[1]], 0, true
	}
	if m := digitHourExpr.FindStringSubmatch(clause); m != nil {
		hour, _ = strconv.Atoi(m[1])
		return hour, 0, true
	}
	if m := colonTimeExpr.FindStringSubmatch(clause); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		return hour, minute, true
	}
	return 0, 0, false
}
