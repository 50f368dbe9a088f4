package site

import "context"

type SiteRepository interface {
	Create(ctx context.Context, s Site) (Site, error)
	List(ctx context.Context) ([]Site, error)
}
