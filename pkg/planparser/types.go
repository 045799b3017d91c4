package planparser

// Task is a plan candidate extracted from free-form text.
type Task struct {
	Title string `json:"title"`
	Time  string `json:"time"` // "HH:MM", 24h, zero-padded
	Date  string `json:"date"` // "YYYY-MM-DD"
}

const (
	// DateFormat is the layout of Task.Date.
	DateFormat = "2006-01-02"

	// timeFormat renders hour and minute as Task.Time.
	timeFormat = "%02d:%02d"
)

// koreanHours maps native Korean counting words to clock hours.
var koreanHours = map[string]int{
	"한": 1, "두": 2, "세": 3, "네": 4, "다섯": 5,
	"여섯": 6, "일곱": 7, "여덟": 8, "아홉": 9, "열": 10,
	"열한": 11, "열두": 12,
	"하나": 1, "둘": 2, "셋": 3, "넷": 4,
}
