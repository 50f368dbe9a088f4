package site

import (
	"context"
	"log/slog"

	"github.com/stafflane/backoffice-backend-go/internal/domain/site"
)

type SiteService interface {
	Create(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error)
	List(ctx context.Context) ([]site.SiteResponse, error)
}

type siteServiceImpl struct {
	siteRepo site.SiteRepository
	logger   *slog.Logger
}

func NewSiteService(siteRepo site.SiteRepository, logger *slog.Logger) SiteService {
	return &siteServiceImpl{siteRepo: siteRepo, logger: logger}
}

func (s *siteServiceImpl) Create(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	entity := site.Site{
		Name:       req.Name,
		Department: req.Department,
		Location:   req.Location,
		IsActive:   true,
	}
	if entity.Department == "" {
		entity.Department = site.DefaultDepartment
	}

	created, err := s.siteRepo.Create(ctx, entity)
	if err != nil {
		return site.SiteResponse{}, err
	}

	s.logger.Info("site created", slog.String("site_id", created.ID), slog.String("name", created.Name))
	return site.ToResponse(created), nil
}

func (s *siteServiceImpl) List(ctx context.Context) ([]site.SiteResponse, error) {
	sites, err := s.siteRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]site.SiteResponse, 0, len(sites))
	for _, st := range sites {
		result = append(result, site.ToResponse(st))
	}
	return result, nil
}
