package usecase

import (
	"context"
	"errors"
	"strings"

	"bbip/internal/model"
	"bbip/internal/plan"
)

// Complete turns free text into stored plans.
// The local parser always runs; a non-empty AI result, obtained within aiTimeout, replaces it.
// When both come back empty the whole text becomes one untimed plan.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input plan.ParseInput) (plan.CompleteOutput, error) {
	if err := checkText(input.Text); err != nil {
		return plan.CompleteOutput{}, err
	}
	text := strings.TrimSpace(input.Text)

	candidates := uc.parseLocal(text)
	source := plan.SourceLocal

	if ai := uc.tryParseAI(ctx, text); len(ai) > 0 {
		candidates = ai
		source = plan.SourceAI
	}

	if len(candidates) == 0 {
		candidates = []plan.Candidate{{Title: truncateTitle(text), Date: uc.today()}}
		source = plan.SourceRaw
	}

	if len(candidates) > uc.maxBulk {
		uc.l.Warnf(ctx, "plan.usecase.Complete: keeping %d of %d %s candidates", uc.maxBulk, len(candidates), source)
		candidates = candidates[:uc.maxBulk]
	}

	bulk, err := uc.CreateBulk(ctx, sc, plan.CreateBulkInput{Plans: candidates})
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Complete.CreateBulk: %v", err)
		return plan.CompleteOutput{}, err
	}

	parseSourceTotal.WithLabelValues(string(source)).Inc()
	return plan.CompleteOutput{
		Source:  source,
		Plans:   bulk.Plans,
		Skipped: bulk.Skipped,
	}, nil
}

// tryParseAI runs the AI parser under aiTimeout. Any failure is logged and yields nil.
func (uc *implUseCase) tryParseAI(ctx context.Context, text string) []plan.Candidate {
	if uc.llm == nil {
		return nil
	}

	if uc.aiTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.aiTimeout)
		defer cancel()
	}

	candidates, err := uc.parseAI(ctx, text)
	if err != nil {
		if !errors.Is(err, plan.ErrAIUnavailable) {
			uc.l.Warnf(ctx, "plan.usecase.Complete: AI parse failed, keeping local result: %v", err)
		}
		return nil
	}
	return candidates
}
