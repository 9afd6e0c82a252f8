// Package careers wraps the /career-posts endpoints and their applicants.
package careers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/campusadmin/internal/app/content"
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/domain/models"
)

type API struct {
	Posts *content.Resource[models.CareerPost]
	c     *cmsclient.Client
}

func New(c *cmsclient.Client) *API {
	return &API{Posts: content.NewResource[models.CareerPost](c, "career-posts"), c: c}
}

func applicantsPath(postID string) string {
	return cmsclient.Path("career-posts", postID, "applicants")
}

// Applicants lists everyone who applied to the post.
func (a *API) Applicants(ctx context.Context, postID string) ([]models.Applicant, error) {
	list, err := cmsclient.List[models.Applicant](ctx, a.c, applicantsPath(postID))
	if err != nil {
		return nil, fmt.Errorf("list applicants of %s: %w", postID, err)
	}
	return list, nil
}

// SetApplicantStatus moves an applicant to status. The result is nil when
// the backend does not echo the applicant.
func (a *API) SetApplicantStatus(ctx context.Context, postID, applicantID, status string) (*models.Applicant, error) {
	path := applicantsPath(postID) + cmsclient.Path(applicantID, "status")
	out, err := cmsclient.Send[models.Applicant](ctx, a.c, http.MethodPut, path, models.ApplicantStatusUpdate{Status: status})
	if err != nil {
		return nil, fmt.Errorf("set status of applicant %s: %w", applicantID, err)
	}
	return out, nil
}

func (a *API) DeleteApplicant(ctx context.Context, postID, applicantID string) error {
	if err := a.c.Delete(ctx, applicantsPath(postID)+cmsclient.Path(applicantID), nil); err != nil {
		return fmt.Errorf("delete applicant %s: %w", applicantID, err)
	}
	return nil
}
