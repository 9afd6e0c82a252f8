// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/campusadmin/internal/app/system/cmsclient"
	"github.com/dalemusser/campusadmin/internal/app/system/workers"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Content is the client for the content backend the dashboard edits.
	Content *cmsclient.Client

	// DraftCleanup is started in Startup and stopped in Shutdown.
	DraftCleanup *workers.DraftCleanup
}
