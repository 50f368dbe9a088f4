package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stafflane/backoffice-backend-go/internal/domain/site"
	"github.com/stafflane/backoffice-backend-go/internal/pkg/database"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO sites (id, name, department, location, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.Name, s.Department, s.Location, s.IsActive).Scan(&s.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_site_name") {
			return site.Site{}, site.ErrSiteNameExists
		}
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return s, nil
}

func (r *siteRepository) List(ctx context.Context) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, department, location, is_active, created_at
		FROM sites
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		var s site.Site
		if err := rows.Scan(&s.ID, &s.Name, &s.Department, &s.Location, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}

	return sites, rows.Err()
}
