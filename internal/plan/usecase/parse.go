package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bbip/internal/model"
	"bbip/internal/plan"
	"bbip/pkg/llmprovider"
	"bbip/pkg/planparser"
)

// ParseLocal runs the rule-based parser. Nothing is stored.
func (uc *implUseCase) ParseLocal(ctx context.Context, sc model.Scope, input plan.ParseInput) (plan.ParseOutput, error) {
	if err := checkText(input.Text); err != nil {
		return plan.ParseOutput{}, err
	}
	return plan.ParseOutput{Plans: uc.parseLocal(input.Text)}, nil
}

// ParseAI asks the configured model to extract plans. Nothing is stored.
func (uc *implUseCase) ParseAI(ctx context.Context, sc model.Scope, input plan.ParseInput) (plan.ParseOutput, error) {
	if err := checkText(input.Text); err != nil {
		return plan.ParseOutput{}, err
	}

	candidates, err := uc.parseAI(ctx, input.Text)
	if err != nil {
		return plan.ParseOutput{}, err
	}
	return plan.ParseOutput{Plans: candidates}, nil
}

func (uc *implUseCase) parseLocal(text string) []plan.Candidate {
	tasks := planparser.Parse(text, uc.localNow())

	out := make([]plan.Candidate, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, plan.Candidate{
			Title: truncateTitle(t.Title),
			Time:  t.Time,
			Date:  t.Date,
		})
	}
	return out
}

// parseAI returns ErrAIUnavailable without a model and wraps every other failure in ErrAIFailed.
func (uc *implUseCase) parseAI(ctx context.Context, text string) ([]plan.Candidate, error) {
	if uc.llm == nil {
		return nil, plan.ErrAIUnavailable
	}

	today := uc.today()
	system := llmprovider.NewTextMessage("system", buildParseSystemPrompt(today))

	start := time.Now()
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          []llmprovider.Message{llmprovider.NewTextMessage("user", text)},
		Temperature:       0,
	})
	aiParseDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		aiParseTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", plan.ErrAIFailed, err)
	}

	raw := resp.Text()
	candidates, err := decodeAICandidates(raw, today)
	if err != nil {
		uc.l.Warnf(ctx, "plan.usecase.parseAI: undecodable response from %s: %q", resp.ProviderName, raw)
		aiParseTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: %v", plan.ErrAIFailed, err)
	}

	aiParseTotal.WithLabelValues("ok").Inc()
	return candidates, nil
}

// decodeAICandidates reads a JSON array of {"time","title"} objects.
// Items without a string title are dropped; titles are trimmed and cut to the stored limit;
// times that are not HH:MM become empty. Every candidate is dated today.
func decodeAICandidates(raw, today string) ([]plan.Candidate, error) {
	var items []any
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(raw)), &items); err != nil {
		return nil, err
	}

	out := make([]plan.Candidate, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title, ok := obj["title"].(string)
		if !ok {
			continue
		}
		title = truncateTitle(title)
		if title == "" {
			continue
		}

		clock, _ := obj["time"].(string)
		if !validClock(clock) {
			clock = ""
		}

		out = append(out, plan.Candidate{Title: title, Time: clock, Date: today})
	}
	return out, nil
}
