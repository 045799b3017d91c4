package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bbip/internal/plan"
)

func TestParseLocal(t *testing.T) {
	uc := newTestUseCase(t, testDeps{}, 0)

	out, err := uc.ParseLocal(context.Background(), testScope, plan.ParseInput{Text: "9시 30분에 회의"})
	require.NoError(t, err)
	assert.Equal(t, []plan.Candidate{{Title: "회의", Time: "09:30", Date: "2026-10-17"}}, out.Plans)

	_, err = uc.ParseLocal(context.Background(), testScope, plan.ParseInput{Text: "  "})
	assert.ErrorIs(t, err, plan.ErrEmptyInput)
}

func TestParseAI(t *testing.T) {
	t.Run("builds the prompt and validates items", func(t *testing.T) {
		llm := &mockLLM{reply: "```json\n[" +
			`{"time": "09:00", "title": " 팀 회의 "},` +
			`{"time": null, "title": "운동"},` +
			`{"time": "7pm", "title": "저녁"},` +
			`{"time": "10:00", "title": ""},` +
			`{"time": "11:00"},` +
			`"not an object"` +
			"]\n```"}
		uc := newTestUseCase(t, testDeps{llm: llm}, 0)

		out, err := uc.ParseAI(context.Background(), testScope, plan.ParseInput{Text: "9시 팀 회의, 운동, 저녁 7시"})
		require.NoError(t, err)

		assert.Equal(t, []plan.Candidate{
			{Title: "팀 회의", Time: "09:00", Date: "2026-10-17"},
			{Title: "운동", Time: "", Date: "2026-10-17"},
			{Title: "저녁", Time: "", Date: "2026-10-17"},
		}, out.Plans)

		require.NotNil(t, llm.lastReq)
		require.NotNil(t, llm.lastReq.SystemInstruction)
		assert.Contains(t, llm.lastReq.SystemInstruction.Parts[0].Text, "오늘 날짜: 2026-10-17")
		assert.Equal(t, float64(0), llm.lastReq.Temperature)
		require.Len(t, llm.lastReq.Messages, 1)
		assert.Equal(t, "user", llm.lastReq.Messages[0].Role)
	})

	t.Run("long titles are cut", func(t *testing.T) {
		long := strings.Repeat("가", 150)
		uc := newTestUseCase(t, testDeps{llm: &mockLLM{reply: `[{"time":"09:00","title":"` + long + `"}]`}}, 0)

		out, err := uc.ParseAI(context.Background(), testScope, plan.ParseInput{Text: "긴 일정"})
		require.NoError(t, err)
		require.Len(t, out.Plans, 1)
		assert.Equal(t, strings.Repeat("가", plan.MaxTitleRunes), out.Plans[0].Title)
	})

	t.Run("not configured", func(t *testing.T) {
		uc := newTestUseCase(t, testDeps{}, 0)
		_, err := uc.ParseAI(context.Background(), testScope, plan.ParseInput{Text: "회의"})
		assert.ErrorIs(t, err, plan.ErrAIUnavailable)
	})

	t.Run("provider error", func(t *testing.T) {
		uc := newTestUseCase(t, testDeps{llm: &mockLLM{err: errors.New("boom")}}, 0)
		_, err := uc.ParseAI(context.Background(), testScope, plan.ParseInput{Text: "회의"})
		assert.ErrorIs(t, err, plan.ErrAIFailed)
	})

	t.Run("not json", func(t *testing.T) {
		uc := newTestUseCase(t, testDeps{llm: &mockLLM{reply: "I could not find any plans."}}, 0)
		_, err := uc.ParseAI(context.Background(), testScope, plan.ParseInput{Text: "회의"})
		assert.ErrorIs(t, err, plan.ErrAIFailed)
	})

	t.Run("empty text", func(t *testing.T) {
		llm := &mockLLM{reply: "[]"}
		uc := newTestUseCase(t, testDeps{llm: llm}, 0)
		_, err := uc.ParseAI(context.Background(), testScope, plan.ParseInput{Text: ""})
		assert.ErrorIs(t, err, plan.ErrEmptyInput)
		assert.Zero(t, llm.calls)
	})
}

func TestParse_TextTooLong(t *testing.T) {
	llm := &mockLLM{reply: `[]`}
	repo := &mockRepo{}
	uc := newTestUseCase(t, testDeps{repo: repo, llm: llm}, 0)
	ctx := context.Background()

	atLimit := strings.Repeat("가", plan.MaxTextRunes)
	_, err := uc.ParseLocal(ctx, testScope, plan.ParseInput{Text: atLimit})
	assert.NoError(t, err)

	long := plan.ParseInput{Text: strings.Repeat("가", plan.MaxTextRunes+1)}

	_, err = uc.ParseLocal(ctx, testScope, long)
	assert.ErrorIs(t, err, plan.ErrTextTooLong)

	_, err = uc.ParseAI(ctx, testScope, long)
	assert.ErrorIs(t, err, plan.ErrTextTooLong)

	_, err = uc.Complete(ctx, testScope, long)
	assert.ErrorIs(t, err, plan.ErrTextTooLong)

	assert.Zero(t, llm.calls)
	assert.Zero(t, repo.bulkCalls)
}
