// internal/app/features/aboutus/handler.go
package aboutus

import (
	"strings"

	aboutusapi "github.com/dalemusser/campusadmin/internal/app/content/aboutus"
	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/features/shared"
	"github.com/dalemusser/campusadmin/internal/app/system/auditlog"
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/app/system/htmlsanitize"
	"github.com/dalemusser/campusadmin/internal/domain/models"
	"go.uber.org/zap"
)

// Handler owns the about-us endpoints.
type Handler struct {
	API    *aboutusapi.API
	Audit  *auditlog.Logger
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger

	heroImages   *shared.CRUD[models.HeroImage, *models.HeroImage]
	statistics   *shared.CRUD[models.Statistic, *models.Statistic]
	coreValues   *shared.CRUD[models.CoreValue, *models.CoreValue]
	campusImages *shared.CRUD[models.CampusImage, *models.CampusImage]
}

// NewHandler constructs an about-us Handler.
func NewHandler(client *cmsclient.Client, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	api := aboutusapi.New(client)
	return &Handler{
		API:    api,
		Audit:  audit,
		Log:    logger,
		ErrLog: errLog,

		heroImages: &shared.CRUD[models.HeroImage, *models.HeroImage]{
			Res: api.HeroImages, Audit: audit, Log: logger, ErrLog: errLog,
			Prepare: func(v *models.HeroImage) {
				v.ImageURL = strings.TrimSpace(v.ImageURL)
				v.AltText = strings.TrimSpace(v.AltText)
			},
		},
		statistics: &shared.CRUD[models.Statistic, *models.Statistic]{
			Res: api.Statistics, Audit: audit, Log: logger, ErrLog: errLog,
			Prepare: func(v *models.Statistic) {
				v.Label = strings.TrimSpace(v.Label)
				v.Value = strings.TrimSpace(v.Value)
			},
		},
		coreValues: &shared.CRUD[models.CoreValue, *models.CoreValue]{
			Res: api.CoreValues, Audit: audit, Log: logger, ErrLog: errLog,
			Prepare: func(v *models.CoreValue) {
				v.Title = strings.TrimSpace(v.Title)
				htmlsanitize.Fields(&v.Description)
			},
		},
		campusImages: &shared.CRUD[models.CampusImage, *models.CampusImage]{
			Res: api.CampusImages, Audit: audit, Log: logger, ErrLog: errLog,
			Prepare: func(v *models.CampusImage) {
				v.ImageURL = strings.TrimSpace(v.ImageURL)
				v.Caption = strings.TrimSpace(v.Caption)
			},
		},
	}
}
