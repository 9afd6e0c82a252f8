// Package campuslife wraps the six campus-life collections. They share one
// document shape and differ only in their backend path.
package campuslife

import (
	"sort"

	"github.com/dalemusser/campusadmin/internal/app/content"
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/domain/models"
)

// Section names as used in dashboard URLs, mapped to backend paths.
var sections = map[string]string{
	"life":       "lifeatinframesection",
	"services":   "studentservice",
	"clubs":      "studentclub",
	"events":     "campusevent",
	"gallery":    "galleryimage",
	"facilities": "sportsfacility",
}

type API struct {
	res map[string]*content.Resource[models.CampusItem]
}

func New(c *cmsclient.Client) *API {
	a := &API{res: make(map[string]*content.Resource[models.CampusItem], len(sections))}
	for name, path := range sections {
		a.res[name] = content.NewResource[models.CampusItem](c, path)
	}
	return a
}

// Section returns the resource for a dashboard section name.
func (a *API) Section(name string) (*content.Resource[models.CampusItem], bool) {
	r, ok := a.res[name]
	return r, ok
}

// Sections lists the known section names in sorted order.
func Sections() []string {
	out := make([]string, 0, len(sections))
	for name := range sections {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
