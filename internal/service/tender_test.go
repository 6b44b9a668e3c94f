package service

import (
	"context"
	"errors"
	"testing"

	"licitaya-api/internal/entity"
	"licitaya-api/internal/repo/repo_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTenderRepo struct {
	tenders   []entity.Tender
	total     int
	detail    *entity.TenderDetail
	err       error
	lastQuery *entity.TenderListQuery
}

func (f *fakeTenderRepo) GetTenders(ctx context.Context, query *entity.TenderListQuery) ([]entity.Tender, int, error) {
	f.lastQuery = query
	if f.err != nil {
		return nil, 0, f.err
	}

	return f.tenders, f.total, nil
}

func (f *fakeTenderRepo) GetTenderById(ctx context.Context, id int64) (*entity.TenderDetail, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.detail, nil
}

func newTenderServiceWithRepo(tenderRepo *fakeTenderRepo) *TenderService {
	return &TenderService{tenderRepo: tenderRepo}
}

func TestGetTendersBuildsPaginationEnvelope(t *testing.T) {
	tenderRepo := &fakeTenderRepo{
		tenders: []entity.Tender{{Id: 1, ReferenceCode: "REF-001"}, {Id: 2, ReferenceCode: "REF-002"}},
		total:   42,
	}
	s := newTenderServiceWithRepo(tenderRepo)

	result, err := s.GetTenders(context.Background(), &entity.TenderListQuery{Page: 3, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, result.Data, 2)
	assert.Equal(t, entity.Pagination{Page: 3, Limit: 2, Total: 42}, result.Pagination)
}

func TestGetTendersNormalizesBeforeQuerying(t *testing.T) {
	tenderRepo := &fakeTenderRepo{}
	s := newTenderServiceWithRepo(tenderRepo)

	_, err := s.GetTenders(context.Background(), &entity.TenderListQuery{})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPage, tenderRepo.lastQuery.Page)
	assert.Equal(t, entity.DefaultLimit, tenderRepo.lastQuery.Limit)
	assert.Equal(t, entity.DefaultSortBy, tenderRepo.lastQuery.SortBy)
}

func TestGetTendersWrapsStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	s := newTenderServiceWithRepo(&fakeTenderRepo{err: cause})

	_, err := s.GetTenders(context.Background(), &entity.TenderListQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to fetch tenders")
}

func TestGetTenderByIdNotFound(t *testing.T) {
	s := newTenderServiceWithRepo(&fakeTenderRepo{err: repo_errors.ErrNotFound})

	_, err := s.GetTenderById(context.Background(), 99)

	assert.ErrorIs(t, err, ErrTenderNotFound)
}

func TestGetTenderByIdReturnsDetail(t *testing.T) {
	detail := &entity.TenderDetail{
		Tender: entity.Tender{Id: 5, ReferenceCode: "REF-005"},
		Buyer:  &entity.Buyer{Name: "Ministerio de Obras Públicas"},
		Lotes:  []entity.Lote{{LoteNumber: 1, Name: "Lote único"}},
	}
	s := newTenderServiceWithRepo(&fakeTenderRepo{detail: detail})

	result, err := s.GetTenderById(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, detail, result)
}
