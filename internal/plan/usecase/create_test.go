package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bbip/internal/model"
	"bbip/internal/plan"
	"bbip/pkg/gcalendar"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   plan.CreateInput
		wantErr error
	}{
		{name: "timed plan", input: plan.CreateInput{Title: " 회의 ", Time: "09:30", Date: "2026-10-17"}},
		{name: "untimed plan", input: plan.CreateInput{Title: "운동", Date: "2026-10-18"}},
		{name: "blank title", input: plan.CreateInput{Title: "  ", Date: "2026-10-17"}, wantErr: plan.ErrInvalidPayload},
		{name: "title too long", input: plan.CreateInput{Title: strings.Repeat("가", 101), Date: "2026-10-17"}, wantErr: plan.ErrInvalidPayload},
		{name: "bad date", input: plan.CreateInput{Title: "운동", Date: "2026-13-01"}, wantErr: plan.ErrInvalidPayload},
		{name: "bad time", input: plan.CreateInput{Title: "운동", Time: "9:30", Date: "2026-10-17"}, wantErr: plan.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, testDeps{}, 0)

			out, err := uc.Create(context.Background(), testScope, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, out.Plan.ID)
			assert.Equal(t, testScope.UserID, out.Plan.UserID)
			assert.Equal(t, strings.TrimSpace(tt.input.Title), out.Plan.Title)
			assert.Equal(t, tt.input.Time, out.Plan.Time)
		})
	}
}

func TestCreate_RepoError(t *testing.T) {
	uc := newTestUseCase(t, testDeps{repo: &mockRepo{fail: true}}, 0)

	_, err := uc.Create(context.Background(), testScope, plan.CreateInput{Title: "운동", Date: "2026-10-17"})
	assert.Error(t, err)
}

func TestCreateBulk(t *testing.T) {
	t.Run("skips invalid items and defaults the date", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUseCase(t, testDeps{repo: repo}, 0)

		out, err := uc.CreateBulk(context.Background(), testScope, plan.CreateBulkInput{Plans: []plan.Candidate{
			{Title: "회의", Time: "09:00"},
			{Title: "   ", Time: "10:00"},
			{Title: "점심", Time: "noon", Date: "2026-10-18"},
			{Title: "운동", Date: "not-a-date"},
		}})
		require.NoError(t, err)

		assert.Equal(t, 2, out.Skipped)
		require.Len(t, out.Plans, 2)
		assert.Equal(t, "회의", out.Plans[0].Plan.Title)
		assert.Equal(t, "2026-10-17", out.Plans[0].Plan.Date)
		assert.Equal(t, "", out.Plans[1].Plan.Time)
		assert.Equal(t, "2026-10-18", out.Plans[1].Plan.Date)
		assert.Equal(t, 1, repo.bulkCalls)
	})

	t.Run("all skipped is not an error", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUseCase(t, testDeps{repo: repo}, 0)

		out, err := uc.CreateBulk(context.Background(), testScope, plan.CreateBulkInput{Plans: []plan.Candidate{{Title: ""}}})
		require.NoError(t, err)
		assert.Empty(t, out.Plans)
		assert.Equal(t, 1, out.Skipped)
		assert.Equal(t, 0, repo.bulkCalls)
	})

	t.Run("empty", func(t *testing.T) {
		uc := newTestUseCase(t, testDeps{}, 0)
		_, err := uc.CreateBulk(context.Background(), testScope, plan.CreateBulkInput{})
		assert.ErrorIs(t, err, plan.ErrEmptyBulk)
	})

	t.Run("too many", func(t *testing.T) {
		uc := newTestUseCase(t, testDeps{}, 2)
		_, err := uc.CreateBulk(context.Background(), testScope, plan.CreateBulkInput{Plans: make([]plan.Candidate, 3)})
		assert.ErrorIs(t, err, plan.ErrBulkTooLarge)
	})

	t.Run("repo error", func(t *testing.T) {
		uc := newTestUseCase(t, testDeps{repo: &mockRepo{fail: true}}, 0)
		_, err := uc.CreateBulk(context.Background(), testScope, plan.CreateBulkInput{Plans: []plan.Candidate{{Title: "회의"}}})
		assert.Error(t, err)
	})
}

func TestCreateBulk_Calendar(t *testing.T) {
	t.Run("mirrors timed plans only", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, testDeps{calendar: cal}, 0)

		out, err := uc.CreateBulk(context.Background(), testScope, plan.CreateBulkInput{Plans: []plan.Candidate{
			{Title: "회의", Time: "09:00"},
			{Title: "독서"},
		}})
		require.NoError(t, err)

		require.Len(t, cal.created, 1)
		req := cal.created[0]
		assert.Equal(t, "회의", req.Summary)
		assert.Equal(t, "2026-10-17T09:00:00+09:00", req.StartTime.Format("2006-01-02T15:04:05Z07:00"))
		assert.Equal(t, req.StartTime.Add(time.Hour), req.EndTime)
		assert.Equal(t, "http://cal.link/회의", out.Plans[0].CalendarLink)
		assert.Empty(t, out.Plans[1].CalendarLink)
	})

	t.Run("existing event with same title is reused", func(t *testing.T) {
		cal := &mockCalendar{existing: []gcalendar.Event{{Summary: " 회의 ", HtmlLink: "http://cal.link/existing"}}}
		uc := newTestUseCase(t, testDeps{calendar: cal}, 0)

		out, err := uc.CreateBulk(context.Background(), testScope, plan.CreateBulkInput{Plans: []plan.Candidate{{Title: "회의", Time: "09:00"}}})
		require.NoError(t, err)
		assert.Empty(t, cal.created)
		assert.Equal(t, "http://cal.link/existing", out.Plans[0].CalendarLink)
	})

	t.Run("calendar failures do not fail the request", func(t *testing.T) {
		for _, cal := range []*mockCalendar{{failList: true}, {failAdd: true}} {
			uc := newTestUseCase(t, testDeps{calendar: cal}, 0)

			out, err := uc.CreateBulk(context.Background(), testScope, plan.CreateBulkInput{Plans: []plan.Candidate{{Title: "회의", Time: "09:00"}}})
			require.NoError(t, err)
			require.Len(t, out.Plans, 1)
			assert.Empty(t, out.Plans[0].CalendarLink)
		}
	})
}

func TestCreate_ScopedToUser(t *testing.T) {
	repo := &mockRepo{}
	uc := newTestUseCase(t, testDeps{repo: repo}, 0)
	other := model.Scope{UserID: "user-2"}

	_, err := uc.Create(context.Background(), other, plan.CreateInput{Title: "남의 일정", Date: "2026-10-17"})
	require.NoError(t, err)

	out, err := uc.List(context.Background(), testScope, plan.ListInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Plans)
}
