package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doumi-inc/doumi-api/external/push"
	"github.com/doumi-inc/doumi-api/store"
)

// BackgroundManager executes the queued jobs of the doumi backend
type BackgroundManager struct {
	Background

	store store.DoumiCore
	mongo store.MongoStore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	doumiCore := store.NewDoumiStore(ormDB, mongoStore)

	p := push.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		Background: Background{Push: p},
		store:      doumiCore,
		mongo:      mongoStore,
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
	m.worker = m.taskServer.NewWorker("doumi-worker", 5)
	return m.worker.Launch()
}
