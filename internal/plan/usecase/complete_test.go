package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bbip/internal/plan"
)

func titles(plans []plan.CreatedPlan) []string {
	out := make([]string, 0, len(plans))
	for _, p := range plans {
		out = append(out, p.Plan.Title)
	}
	return out
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name       string
		llm        *mockLLM
		text       string
		wantSource plan.ParseSource
		wantTitles []string
	}{
		{
			name:       "local only without a model",
			text:       "9시 회의 12시 점심",
			wantSource: plan.SourceLocal,
			wantTitles: []string{"회의", "점심"},
		},
		{
			name:       "ai result replaces local",
			llm:        &mockLLM{reply: `[{"time":"09:00","title":"주간 회의"}]`},
			text:       "9시 회의 12시 점심",
			wantSource: plan.SourceAI,
			wantTitles: []string{"주간 회의"},
		},
		{
			name:       "empty ai result keeps local",
			llm:        &mockLLM{reply: `[]`},
			text:       "9시 회의",
			wantSource: plan.SourceLocal,
			wantTitles: []string{"회의"},
		},
		{
			name:       "ai failure keeps local",
			llm:        &mockLLM{err: errors.New("rate limited")},
			text:       "9시 회의",
			wantSource: plan.SourceLocal,
			wantTitles: []string{"회의"},
		},
		{
			name:       "ai timeout keeps local",
			llm:        &mockLLM{block: true},
			text:       "9시 회의",
			wantSource: plan.SourceLocal,
			wantTitles: []string{"회의"},
		},
		{
			name:       "raw text when nothing parses",
			text:       " ,,, ",
			wantSource: plan.SourceRaw,
			wantTitles: []string{",,,"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := testDeps{repo: &mockRepo{}}
			if tt.llm != nil {
				deps.llm = tt.llm
			}
			uc := newTestUseCase(t, deps, 0)

			out, err := uc.Complete(context.Background(), testScope, plan.ParseInput{Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, out.Source)
			assert.Equal(t, tt.wantTitles, titles(out.Plans))
			assert.Len(t, deps.repo.plans, len(tt.wantTitles))
		})
	}
}

func TestComplete_RawPlanHasNoTime(t *testing.T) {
	uc := newTestUseCase(t, testDeps{}, 0)

	out, err := uc.Complete(context.Background(), testScope, plan.ParseInput{Text: ",,,"})
	require.NoError(t, err)
	require.Len(t, out.Plans, 1)
	assert.Equal(t, "", out.Plans[0].Plan.Time)
	assert.Equal(t, "2026-10-17", out.Plans[0].Plan.Date)
}

func TestComplete_CapsToMaxBulk(t *testing.T) {
	llm := &mockLLM{reply: `[{"time":"09:00","title":"a"},{"time":"10:00","title":"b"},{"time":"11:00","title":"c"}]`}
	uc := newTestUseCase(t, testDeps{llm: llm}, 2)

	out, err := uc.Complete(context.Background(), testScope, plan.ParseInput{Text: "세 가지 일정"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, titles(out.Plans))
}

func TestComplete_Errors(t *testing.T) {
	uc := newTestUseCase(t, testDeps{}, 0)
	_, err := uc.Complete(context.Background(), testScope, plan.ParseInput{Text: " \n "})
	assert.ErrorIs(t, err, plan.ErrEmptyInput)

	uc = newTestUseCase(t, testDeps{repo: &mockRepo{fail: true}}, 0)
	_, err = uc.Complete(context.Background(), testScope, plan.ParseInput{Text: "9시 회의"})
	assert.Error(t, err)
}
