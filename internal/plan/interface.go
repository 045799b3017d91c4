package plan

import (
	"context"

	"bbip/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Plan CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	CreateBulk(ctx context.Context, sc model.Scope, input CreateBulkInput) (CreateBulkOutput, error)

	// Text parsing
	ParseLocal(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
	ParseAI(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
	Complete(ctx context.Context, sc model.Scope, input ParseInput) (CompleteOutput, error)

	// Statistics
	Stats(ctx context.Context, sc model.Scope, input StatsInput) (StatsOutput, error)
}
