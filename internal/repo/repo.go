package repo

import (
	"context"
	"time"

	"licitaya-api/internal/entity"
	"licitaya-api/internal/repo/pgdb"
	"licitaya-api/pkg/postgres"
)

type Diagnostics interface {
	Ping() error
}

type Tender interface {
	GetTenders(ctx context.Context, query *entity.TenderListQuery) ([]entity.Tender, int, error)
	GetTenderById(ctx context.Context, id int64) (*entity.TenderDetail, error)
}

type User interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByToken(ctx context.Context, token string) (*entity.User, error)
	CreateUser(ctx context.Context, input *entity.CreateUserInput) (int64, error)
	UpdateVerificationToken(ctx context.Context, userId int64, token string, expires time.Time) error
	MarkUserVerified(ctx context.Context, userId int64) error
}

type Repositories struct {
	Diagnostics
	Tender
	User
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Tender:      pgdb.NewTenderRepo(p),
		User:        pgdb.NewUserRepo(p),
	}
}
