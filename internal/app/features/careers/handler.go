// internal/app/features/careers/handler.go
package careers

import (
	"strings"

	careersapi "github.com/dalemusser/campusadmin/internal/app/content/careers"
	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/features/shared"
	"github.com/dalemusser/campusadmin/internal/app/system/auditlog"
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"go.uber.org/zap"
)

// Handler owns the career post and applicant endpoints.
type Handler struct {
	API    *careersapi.API
	Audit  *auditlog.Logger
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	posts *shared.CRUD[models.CareerPost, *models.CareerPost]
}

// NewHandler constructs a careers Handler.
func NewHandler(client *cmsclient.Client, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	api := careersapi.New(client)
	return &Handler{
		API:    api,
		Audit:  audit,
		Log:    logger,
		ErrLog: errLog,
		posts: &shared.CRUD[models.CareerPost, *models.CareerPost]{
			Res:     api.Posts,
			Prepare: preparePost,
			Audit:   audit,
			Log:     logger,
			ErrLog:  errLog,
		},
	}
}

// preparePost trims the post and drops requirement rows left blank in the
// editor. The server sets createdAt.
func preparePost(p *models.CareerPost) {
	p.Title = strings.TrimSpace(p.Title)
	p.Place = strings.TrimSpace(p.Place)
	p.EmploymentType = strings.TrimSpace(p.EmploymentType)
	htmlsanitize.Fields(&p.Description)
	p.CreatedAt = nil

	reqs := make([]string, 0, len(p.Requirements))
	for _, req := range p.Requirements {
		if req = strings.TrimSpace(req); req != "" {
			reqs = append(reqs, req)
		}
	}
	p.Requirements = reqs
}
