// internal/app/features/programs/handler.go
package programs

import (
	"context"
	"net/http"

	"github.com/dalemusser/campusadmin/internal/app/content/courses"
	uierrors "github.com/dalemusser/campusadmin/internal/app/features/errors"
	"github.com/dalemusser/campusadmin/internal/app/features/shared"
	"github.com/dalemusser/campusadmin/internal/app/store/drafts"
	"github.com/dalemusser/campusadmin/internal/app/system/auditlog"
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the course, program and program-draft endpoints.
type Handler struct {
	Courses *courses.API
	Drafts  *drafts.Store
	Audit   *auditlog.Logger
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

// NewHandler constructs a programs Handler.
func NewHandler(db *mongo.Database, client *cmsclient.Client, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Courses: courses.New(client),
		Drafts:  drafts.New(db),
		Audit:   audit,
		Log:     logger,
		ErrLog:  errLog,
	}
}

func (h *Handler) backendCtx(r *http.Request, op string) (context.Context, context.CancelFunc) {
	return shared.BackendContext(r, h.Log, op)
}

// dbCtx bounds a drafts store call.
func (h *Handler) dbCtx(r *http.Request, op string) (context.Context, context.CancelFunc) {
	return timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, op)
}
