package datemath

import "errors"

// DateFormat is the calendar-day layout used by plans.
const DateFormat = "2006-01-02"

var ErrUnknownExpression = errors.New("unknown date expression")

var dayOffsets = map[string]int{
	"today":     0,
	"tomorrow":  1,
	"yesterday": -1,
	"오늘":        0,
	"내일":        1,
	"모레":        2,
	"어제":        -1,
}
