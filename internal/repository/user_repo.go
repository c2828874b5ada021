package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/estatedesk/crm-reports-api/pkg/model"
	"google.golang.org/api/iterator"
)

const usersCollection = "users"

// UserRepository handles Firestore reads for user documents.
type UserRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{client: client}
}

// ListPublished loads every published user.
func (r *UserRepository) ListPublished(ctx context.Context) ([]model.User, error) {
	iter := r.published().Documents(ctx)
	var result []model.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate users: %w", err)
		}
		var u model.User
		if err := doc.DataTo(&u); err != nil {
			return nil, fmt.Errorf("decode user %s: %w", doc.Ref.ID, err)
		}
		if u.ID == "" {
			u.ID = doc.Ref.ID
		}
		result = append(result, u)
	}
	return result, nil
}

// CountPublished counts all published users server-side.
func (r *UserRepository) CountPublished(ctx context.Context) (int64, error) {
	return countQuery(ctx, r.published(), usersCollection)
}

func (r *UserRepository) published() firestore.Query {
	return r.client.Collection(usersCollection).Where("published", "==", true)
}
