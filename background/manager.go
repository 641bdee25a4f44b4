package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openepi/mpox-analytics-api/store"
)

// BackgroundManager is a struct for the analytics background manager
type BackgroundManager struct {
	store store.AnalyticsCore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	analyticsCore := store.NewAnalyticsStore(ormDB, store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	))

	return &BackgroundManager{
		store:      analyticsCore,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("analytics-worker", 5)
	return m.worker.Launch()
}
