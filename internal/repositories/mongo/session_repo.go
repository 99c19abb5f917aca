package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hirehub/assessment/internal/interview"
	"hirehub/assessment/internal/models"
)

// SessionRepo stores interview sessions in a MongoDB collection keyed by
// session id. The service only issues find-by-id and full-document saves;
// schema migration and indexing policy belong to the platform, not here.
type SessionRepo struct{ col *mongo.Collection }

func NewSessionRepo(c *Client, dbName string) (*SessionRepo, error) {
	db, err := c.DB(dbName)
	if err != nil {
		return nil, err
	}

	col := db.Collection("interview_sessions")
	r := &SessionRepo{col: col}

	_, _ = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "session_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return r, nil
}

func (r *SessionRepo) FindByID(ctx context.Context, sessionID string) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := r.col.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, interview.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Save upserts the full session document.
func (r *SessionRepo) Save(ctx context.Context, session *models.InterviewSession) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"session_id": session.SessionID}, session, opts)
	return err
}
