package service

import (
	"context"
	"errors"
	"fmt"

	"licitaya-api/internal/entity"
	"licitaya-api/internal/repo"
	"licitaya-api/internal/repo/repo_errors"
)

type TenderService struct {
	tenderRepo repo.Tender
}

func NewTenderService(repos *repo.Repositories) *TenderService {
	return &TenderService{
		tenderRepo: repos.Tender,
	}
}

func (s *TenderService) GetTenders(ctx context.Context, query *entity.TenderListQuery) (*entity.TenderList, error) {
	query.Normalize()

	tenders, total, err := s.tenderRepo.GetTenders(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenders: %w", err)
	}

	return &entity.TenderList{
		Data:       tenders,
		Pagination: entity.NewPagination(query.Page, query.Limit, total),
	}, nil
}

func (s *TenderService) GetTenderById(ctx context.Context, id int64) (*entity.TenderDetail, error) {
	tender, err := s.tenderRepo.GetTenderById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotFound
		}

		return nil, fmt.Errorf("failed to fetch tender: %w", err)
	}

	return tender, nil
}
