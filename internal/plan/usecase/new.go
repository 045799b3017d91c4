package usecase

import (
	"time"

	"bbip/internal/plan"
	"bbip/internal/plan/repository"
	"bbip/pkg/datemath"
	"bbip/pkg/gcalendar"
	"bbip/pkg/llmprovider"
	"bbip/pkg/log"
)

// Config is the dependency bag passed to New().
// LLM and Calendar are optional; without them AI parsing is unavailable and plans are not mirrored.
type Config struct {
	LLM      llmprovider.Generator
	Calendar gcalendar.Calendar

	// AITimeout bounds the AI step of Complete.
	AITimeout time.Duration
	MaxBulk   int

	// Now defaults to time.Now.
	Now func() time.Time
}

// implUseCase is the private implementation of plan.UseCase.
type implUseCase struct {
	repo      repository.Repository
	dates     *datemath.Parser
	llm       llmprovider.Generator
	calendar  gcalendar.Calendar
	aiTimeout time.Duration
	maxBulk   int
	now       func() time.Time
	l         log.Logger
}

// New creates a new plan UseCase implementation.
func New(l log.Logger, repo repository.Repository, dates *datemath.Parser, cfg Config) *implUseCase {
	if cfg.MaxBulk <= 0 {
		cfg.MaxBulk = plan.DefaultMaxBulk
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implUseCase{
		repo:      repo,
		dates:     dates,
		llm:       cfg.LLM,
		calendar:  cfg.Calendar,
		aiTimeout: cfg.AITimeout,
		maxBulk:   cfg.MaxBulk,
		now:       cfg.Now,
		l:         l,
	}
}

// localNow is the current instant in the configured timezone.
func (uc *implUseCase) localNow() time.Time {
	return uc.dates.In(uc.now())
}

func (uc *implUseCase) today() string {
	return uc.dates.Today(uc.now())
}
