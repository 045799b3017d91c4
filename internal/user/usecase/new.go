package usecase

import (
	"bbip/internal/user/repository"
	"bbip/pkg/encrypter"
	"bbip/pkg/log"
	"bbip/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo      repository.Repository
	encrypter encrypter.Encrypter
	scope     scope.Manager
	l         log.Logger
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, enc encrypter.Encrypter, scopeManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		encrypter: enc,
		scope:     scopeManager,
		l:         l,
	}
}
