package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doumi-inc/doumi-api/schema"
)

type NotificationJournal interface {
	SaveNotification(notification *schema.Notification) (bool, error)
	ListNotifications(accountNumber string, limit int64) ([]schema.Notification, error)
}

// SaveNotification journals a notification and reports whether this write
// claimed its stable key. A false return means some other instance or a
// retried tick already pushed the same notification; the caller must not
// deliver it again.
func (m *mongoDB) SaveNotification(notification *schema.Notification) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.Key == "" {
		notification.Key = notification.ID
	}
	if notification.Timestamp.IsZero() {
		notification.Timestamp = time.Now().UTC()
	}

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)
	if _, err := c.InsertOne(ctx, notification); err != nil {
		if isDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// ListNotifications returns the recent notification feed of an account,
// newest first.
func (m *mongoDB) ListNotifications(accountNumber string, limit int64) ([]schema.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 100
	}

	c := m.client.Database(m.database).Collection(schema.NotificationCollection)

	cursor, err := c.Find(ctx,
		bson.M{"recipient": accountNumber},
		options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := make([]schema.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}
