package user

import (
	"context"
	"fmt"
	"time"

	"github.com/neet-mastery/mastery-lambda/internal/config"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const syncPlatform = "web-mastery-portal"

// RemoteSync mirrors profiles to a central store for admin tracking.
type RemoteSync interface {
	SyncUser(ctx context.Context, p *Profile) error
	Close(ctx context.Context) error
}

type noopSync struct{}

func (noopSync) SyncUser(context.Context, *Profile) error { return nil }
func (noopSync) Close(context.Context) error              { return nil }

type mongoSync struct {
	client *mongo.Client
	users  *mongo.Collection
}

// NewRemoteSync connects to MongoDB. With an empty uri sync is disabled.
func NewRemoteSync(ctx context.Context, uri, database string) (RemoteSync, error) {
	if uri == "" {
		config.Logger.Warn("MONGO_URI not set, remote user sync is disabled")
		return noopSync{}, nil
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	config.Logger.Infof("Remote user sync connected to database %s", database)
	return &mongoSync{
		client: client,
		users:  client.Database(database).Collection("users"),
	}, nil
}

func (s *mongoSync) SyncUser(ctx context.Context, p *Profile) error {
	now := time.Now().UTC()

	var email, phone any
	if p.Email != "" {
		email = p.Email
	}
	if p.Phone != "" {
		phone = p.Phone
	}

	update := bson.M{
		"$set": bson.M{
			"uid":          p.ID,
			"name":         p.Name,
			"email":        email,
			"phone":        phone,
			"authMethod":   string(p.AuthMethod),
			"isSubscribed": p.IsSubscribed,
			"loginTime":    now,
			"lastActive":   now,
			"platform":     syncPlatform,
		},
	}

	_, err := s.users.UpdateOne(ctx, bson.M{"_id": p.ID}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("sync user %s: %w", p.ID, err)
	}
	return nil
}

func (s *mongoSync) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
