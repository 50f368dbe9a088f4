package site

import "errors"

var (
	ErrSiteNotFound   = errors.New("site not found")
	ErrSiteNameExists = errors.New("a site with this name already exists")
)
