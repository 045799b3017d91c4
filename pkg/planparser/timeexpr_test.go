package planparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractTime(t *testing.T) {
	tests := []struct {
		clause string
		want   string
		wantOK bool
	}{
		{"9시 30분에 회의", "09:30", true},
		{"오후 3시 반에 카페", "15:30", true},
		{"아침 7시에 조깅", "07:00", true},
		{"새벽 4시 기상", "04:00", true},
		{"저녁 7시 약속", "19:00", true},
		{"오전 12시 30분 점심", "00:30", true},
		{"밤 새벽 12시 통화", "00:00", true},
		{"세시에 미팅", "15:00", true},
		{"네시 반", "16:30", true},
		{"열시 회의", "10:00", true},
		{"한시 점심", "13:00", true},
		{"12시 점심", "12:00", true},
		{"7:05 study", "07:05", true},
		{"3시 15분", "15:15", true},
		{"25시 회의", "", false},
		{"9시 75분", "", false},
		{"회의", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			got, ok := ExtractTime(tt.clause)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallbackTime(t *testing.T) {
	now := time.Date(2026, 10, 17, 21, 40, 0, 0, time.UTC)

	assert.Equal(t, "22:00", fallbackTime(now, 0))
	assert.Equal(t, "23:00", fallbackTime(now, 1))
	assert.Equal(t, "00:00", fallbackTime(now, 2))
	assert.Equal(t, "01:00", fallbackTime(now, 3))
}
