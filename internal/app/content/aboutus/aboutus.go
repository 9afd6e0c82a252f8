// Package aboutus wraps the /about-us endpoints.
package aboutus

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/campusadmin/internal/app/content"
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/domain/models"
)

// Backend path segments under /about-us.
const (
	HeroImages   = "hero-images"
	Statistics   = "statistics"
	CoreValues   = "core-values"
	CampusImages = "campus-images"
	Content      = "content"
)

type API struct {
	HeroImages   *content.Resource[models.HeroImage]
	Statistics   *content.Resource[models.Statistic]
	CoreValues   *content.Resource[models.CoreValue]
	CampusImages *content.Resource[models.CampusImage]

	c *cmsclient.Client
}

func New(c *cmsclient.Client) *API {
	return &API{
		HeroImages:   content.NewResource[models.HeroImage](c, "about-us", HeroImages),
		Statistics:   content.NewResource[models.Statistic](c, "about-us", Statistics),
		CoreValues:   content.NewResource[models.CoreValue](c, "about-us", CoreValues),
		CampusImages: content.NewResource[models.CampusImage](c, "about-us", CampusImages),
		c:            c,
	}
}

var contentPath = cmsclient.Path("about-us", Content)

// ListContent returns every content section.
func (a *API) ListContent(ctx context.Context) ([]models.ContentSection, error) {
	s, err := cmsclient.List[models.ContentSection](ctx, a.c, contentPath)
	if err != nil {
		return nil, fmt.Errorf("list about-us content: %w", err)
	}
	return s, nil
}

// ContentByType returns the section of the given type, or nil.
func (a *API) ContentByType(ctx context.Context, typ string) (*models.ContentSection, error) {
	all, err := a.ListContent(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Type == typ {
			return &all[i], nil
		}
	}
	return nil, nil
}

// UpsertContent creates or replaces the section whose type matches s.Type.
// Without an echo from the backend, s is returned as sent.
func (a *API) UpsertContent(ctx context.Context, s models.ContentSection) (*models.ContentSection, error) {
	s.ID = ""
	out, err := cmsclient.Send[models.ContentSection](ctx, a.c, http.MethodPost, contentPath, s)
	if err != nil {
		return nil, fmt.Errorf("upsert about-us content %q: %w", s.Type, err)
	}
	if out == nil {
		return &s, nil
	}
	return out, nil
}

func (a *API) DeleteContent(ctx context.Context, id string) error {
	if err := a.c.Delete(ctx, contentPath+cmsclient.Path(id), nil); err != nil {
		return fmt.Errorf("delete about-us content %s: %w", id, err)
	}
	return nil
}
