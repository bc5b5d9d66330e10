package store

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	RequestStore
	MatchingEngine
	ConversationStore
	MeetingStore
	CallStore
	NotificationJournal
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string

	// per-request selection serialization within this process. The
	// authoritative guard across processes is the conditional update in
	// SelectApplication; this only keeps local racers from burning a
	// round trip each.
	requestLocks sync.Map
}

func (m *mongoDB) lockRequest(requestID string) *sync.Mutex {
	mu, _ := m.requestLocks.LoadOrStore(requestID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
