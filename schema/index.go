package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexRequestCollection())
	panicIfError(m.IndexApplicationCollection())
	panicIfError(m.IndexConversationCollection())
	panicIfError(m.IndexEventCollection())
	panicIfError(m.IndexMeetingCollection())
	panicIfError(m.IndexCallSessionCollection())
	panicIfError(m.IndexNotificationCollection())
}

func (m *MongoDBIndexer) IndexRequestCollection() error {
	if err := m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "status", Value: 1},
			bson.E{Key: "created_at", Value: -1},
		},
	})
}

// IndexApplicationCollection guards one application per helper per request.
func (m *MongoDBIndexer) IndexApplicationCollection() error {
	if err := m.createIndex(ApplicationCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(ApplicationCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "request_id", Value: 1},
			bson.E{Key: "helper", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

// IndexConversationCollection guards at most one conversation per request.
func (m *MongoDBIndexer) IndexConversationCollection() error {
	if err := m.createIndex(ConversationCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(ConversationCollection, mongo.IndexModel{
		Keys: bson.M{
			"request_id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

// IndexEventCollection guards the gapless per-conversation sequence.
func (m *MongoDBIndexer) IndexEventCollection() error {
	return m.createIndex(EventCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "conversation_id", Value: 1},
			bson.E{Key: "seq", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexMeetingCollection() error {
	if err := m.createIndex(MeetingCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(MeetingCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "status", Value: 1},
			bson.E{Key: "scheduled_at", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexCallSessionCollection() error {
	if err := m.createIndex(CallSessionCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(CallSessionCollection, mongo.IndexModel{
		Keys: bson.M{
			"conversation_id": 1,
		},
	})
}

// IndexNotificationCollection guards push deduplication by stable key.
func (m *MongoDBIndexer) IndexNotificationCollection() error {
	if err := m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.M{
			"key": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(NotificationCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "recipient", Value: 1},
			bson.E{Key: "timestamp", Value: -1},
		},
	})
}
