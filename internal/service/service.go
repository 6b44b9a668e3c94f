package service

import (
	"context"

	"licitaya-api/internal/entity"
	"licitaya-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Tender interface {
	GetTenders(ctx context.Context, query *entity.TenderListQuery) (*entity.TenderList, error)
	GetTenderById(ctx context.Context, id int64) (*entity.TenderDetail, error)
}

type User interface {
	Register(ctx context.Context, input *entity.RegisterInput) (RegisterOutcome, error)
	Verify(ctx context.Context, token string) error
}

// MailDispatcher schedules a verification email for background delivery.
// Enqueue must not block and must only be called after the user row is
// committed.
type MailDispatcher interface {
	Enqueue(email entity.VerificationEmail)
}

type Services struct {
	Diagnostics Diagnostics
	Tender      Tender
	User        User
}

func NewServices(repos *repo.Repositories, dispatcher MailDispatcher) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Tender:      NewTenderService(repos),
		User:        NewUserService(repos, dispatcher),
	}
}
