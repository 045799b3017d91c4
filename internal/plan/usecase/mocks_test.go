package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bbip/internal/model"
	"bbip/internal/plan"
	"bbip/internal/plan/repository"
	"bbip/internal/plan/usecase"
	"bbip/pkg/datemath"
	"bbip/pkg/gcalendar"
	"bbip/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory plan store.
type mockRepo struct {
	mu    sync.Mutex
	plans []plan.Plan
	seq   int
	fail  bool

	bulkCalls int
}

func (m *mockRepo) insert(opt repository.CreatePlanOptions) plan.Plan {
	m.seq++
	p := plan.Plan{
		ID:     fmt.Sprintf("plan-%d", m.seq),
		UserID: opt.UserID,
		Title:  opt.Title,
		Time:   opt.Time,
		Date:   opt.Date,
	}
	m.plans = append(m.plans, p)
	return p
}

func (m *mockRepo) CreatePlan(ctx context.Context, opt repository.CreatePlanOptions) (plan.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return plan.Plan{}, errors.New("db error")
	}
	return m.insert(opt), nil
}

func (m *mockRepo) CreatePlans(ctx context.Context, opts []repository.CreatePlanOptions) ([]plan.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bulkCalls++
	if m.fail {
		return nil, errors.New("db error")
	}
	out := make([]plan.Plan, 0, len(opts))
	for _, o := range opts {
		out = append(out, m.insert(o))
	}
	return out, nil
}

func (m *mockRepo) GetOnePlan(ctx context.Context, opt repository.GetOnePlanOptions) (plan.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return plan.Plan{}, errors.New("db error")
	}
	for _, p := range m.plans {
		if p.ID == opt.ID && p.UserID == opt.UserID {
			return p, nil
		}
	}
	return plan.Plan{}, nil
}

func (m *mockRepo) ListPlans(ctx context.Context, opt repository.ListPlansOptions) ([]plan.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errors.New("db error")
	}
	out := make([]plan.Plan, 0)
	for _, p := range m.plans {
		if p.UserID != opt.UserID {
			continue
		}
		if opt.Date != "" && p.Date != opt.Date {
			continue
		}
		if opt.StartDate != "" && p.Date < opt.StartDate {
			continue
		}
		if opt.EndDate != "" && p.Date > opt.EndDate {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (m *mockRepo) UpdatePlan(ctx context.Context, opt repository.UpdatePlanOptions) (plan.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return plan.Plan{}, errors.New("db error")
	}
	for i := range m.plans {
		p := &m.plans[i]
		if p.ID != opt.ID || p.UserID != opt.UserID {
			continue
		}
		if opt.Title != nil {
			p.Title = *opt.Title
		}
		if opt.Time != nil {
			p.Time = *opt.Time
		}
		if opt.Date != nil {
			p.Date = *opt.Date
		}
		if opt.Completed != nil {
			p.Completed = *opt.Completed
		}
		return *p, nil
	}
	return plan.Plan{}, nil
}

func (m *mockRepo) DeletePlan(ctx context.Context, opt repository.DeletePlanOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("db error")
	}
	for i, p := range m.plans {
		if p.ID == opt.ID && p.UserID == opt.UserID {
			m.plans = append(m.plans[:i], m.plans[i+1:]...)
			return nil
		}
	}
	return nil
}

// mockLLM replies with a fixed text, an error, or blocks until the context ends.
type mockLLM struct {
	reply string
	err   error
	block bool

	calls   int
	lastReq *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.NewTextMessage("assistant", m.reply),
		ProviderName: "mock",
	}, nil
}

type mockCalendar struct {
	existing []gcalendar.Event
	failList bool
	failAdd  bool

	created []gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.failAdd {
		return nil, errors.New("cal error")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: "ev-1", Summary: req.Summary, HtmlLink: "http://cal.link/" + strings.ReplaceAll(req.Summary, " ", "-")}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.failList {
		return nil, errors.New("cal list error")
	}
	return m.existing, nil
}

// 2026-10-17 09:15 in Seoul.
var fixedNow = time.Date(2026, 10, 17, 0, 15, 0, 0, time.UTC)

var testScope = model.Scope{UserID: "user-1", Name: "tester", Email: "t@example.com"}

type testDeps struct {
	repo     *mockRepo
	llm      *mockLLM
	calendar *mockCalendar
}

// newTestUseCase wires a usecase; nil llm or calendar leaves that dependency unset.
func newTestUseCase(t *testing.T, deps testDeps, maxBulk int) plan.UseCase {
	t.Helper()

	dates, err := datemath.NewParser("Asia/Seoul")
	require.NoError(t, err)

	if deps.repo == nil {
		deps.repo = &mockRepo{}
	}
	cfg := usecase.Config{
		AITimeout: 50 * time.Millisecond,
		MaxBulk:   maxBulk,
		Now:       func() time.Time { return fixedNow },
	}
	if deps.llm != nil {
		cfg.LLM = deps.llm
	}
	if deps.calendar != nil {
		cfg.Calendar = deps.calendar
	}
	return usecase.New(&mockLogger{}, deps.repo, dates, cfg)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
