package planparser_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bbip/pkg/planparser"
)

var seoul = time.FixedZone("KST", 9*60*60)

// 2026-10-17 09:15 KST
var fixedNow = time.Date(2026, 10, 17, 9, 15, 0, 0, seoul)

func TestParse_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []planparser.Task
	}{
		{
			name: "hour and minutes",
			text: "9시 30분에 회의",
			want: []planparser.Task{
				{Title: "회의", Time: "09:30", Date: "2026-10-17"},
			},
		},
		{
			name: "deadline rewrite keeps noon",
			text: "열두시까지 제출해야 하는 PPT",
			want: []planparser.Task{
				{Title: "PPT 제출", Time: "12:00", Date: "2026-10-17"},
			},
		},
		{
			name: "bare afternoon hour and meridiem word without numeral",
			text: "3시에 미팅, 저녁에 운동",
			want: []planparser.Task{
				{Title: "운동", Time: "11:00", Date: "2026-10-17"},
				{Title: "미팅", Time: "15:00", Date: "2026-10-17"},
			},
		},
		{
			name: "two times in one clause are split",
			text: "9시 회의 12시 점심",
			want: []planparser.Task{
				{Title: "회의", Time: "09:00", Date: "2026-10-17"},
				{Title: "점심", Time: "12:00", Date: "2026-10-17"},
			},
		},
		{
			name: "connective splits clauses",
			text: "10시에 회의하고 2시에 점심",
			want: []planparser.Task{
				{Title: "회의", Time: "10:00", Date: "2026-10-17"},
				{Title: "점심", Time: "14:00", Date: "2026-10-17"},
			},
		},
		{
			name: "half hour with pm marker",
			text: "오후 3시 반에 카페",
			want: []planparser.Task{
				{Title: "카페", Time: "15:30", Date: "2026-10-17"},
			},
		},
		{
			name: "korean numeral with half and companion split",
			text: "열한시 반에 친구랑 약속",
			want: []planparser.Task{
				{Title: "약속", Time: "11:00", Date: "2026-10-17"},
				{Title: "친구", Time: "11:30", Date: "2026-10-17"},
			},
		},
		{
			name: "until rewrite always says submit",
			text: "5시까지 보고서 완료",
			want: []planparser.Task{
				{Title: "보고서 제출", Time: "17:00", Date: "2026-10-17"},
			},
		},
		{
			name: "english title is capitalized",
			text: "9:00 standup",
			want: []planparser.Task{
				{Title: "Standup", Time: "09:00", Date: "2026-10-17"},
			},
		},
		{
			name: "out of range hour falls back",
			text: "25시 회의",
			want: []planparser.Task{
				{Title: "회의", Time: "10:00", Date: "2026-10-17"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planparser.Parse(tt.text, fixedNow)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", " , . \n ", "\n\n", ",,,"} {
		got := planparser.Parse(text, fixedNow)
		require.NotNil(t, got)
		assert.Empty(t, got, "input %q", text)
	}
}

func TestParse_FallbackSkipsDroppedClauses(t *testing.T) {
	got := planparser.Parse("운동, 에, 독서", fixedNow)

	require.Len(t, got, 2)
	assert.Equal(t, planparser.Task{Title: "운동", Time: "10:00", Date: "2026-10-17"}, got[0])
	assert.Equal(t, planparser.Task{Title: "독서", Time: "11:00", Date: "2026-10-17"}, got[1])
}

func TestParse_FallbackWrapsMidnight(t *testing.T) {
	late := time.Date(2026, 10, 17, 23, 30, 0, 0, seoul)

	got := planparser.Parse("운동", late)

	require.Len(t, got, 1)
	assert.Equal(t, "00:00", got[0].Time)
	assert.Equal(t, "2026-10-17", got[0].Date)
}

func TestParse_Invariants(t *testing.T) {
	inputs := []string{
		"9시 30분에 회의, 열두시까지 제출해야 하는 PPT 있고 저녁에 운동",
		"아침 7시에 조깅 그리고 오후 2시 치과 또 밤 10시 독서",
		"나는 오늘 세시에 미팅이랑 다섯시 반에 저녁 약속",
		"운동, 독서, 청소, 빨래",
		"7:45 study 9시 회의 12시 점심",
	}
	rawTime := regexp.MustCompile(`\d\s*시|\d\s*분|\d{1,2}:\d{2}`)
	clock := regexp.MustCompile(`^\d{2}:\d{2}$`)

	for _, text := range inputs {
		got := planparser.Parse(text, fixedNow)
		require.NotEmpty(t, got, "input %q", text)

		for i, task := range got {
			assert.NotEmpty(t, task.Title)
			assert.False(t, rawTime.MatchString(task.Title), "title %q keeps a time expression", task.Title)
			assert.Regexp(t, clock, task.Time)
			assert.Equal(t, "2026-10-17", task.Date)
			if i > 0 {
				assert.LessOrEqual(t, got[i-1].Time, task.Time, "output not sorted for %q", text)
			}
		}
	}
}

func TestParse_DoesNotShareState(t *testing.T) {
	first := planparser.Parse("운동", fixedNow)
	second := planparser.Parse("운동", fixedNow)

	assert.Equal(t, first, second)
}

func TestParse_DeadlineGuardTitleKeepsTime(t *testing.T) {
	got := planparser.Parse("까지 제출해야 하는 PPT 3시", fixedNow)

	require.Len(t, got, 1)
	assert.Equal(t, planparser.Task{Title: "PPT 3시 제출", Time: "15:00", Date: "2026-10-17"}, got[0])
}
