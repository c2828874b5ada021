package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/estatedesk/crm-reports-api/pkg/model"
)

// SnapshotRepository manages the system/dashboard singleton document.
type SnapshotRepository struct {
	client *firestore.Client
}

func NewSnapshotRepository(client *firestore.Client) *SnapshotRepository {
	return &SnapshotRepository{client: client}
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot model.DashboardSnapshot) error {
	ref := r.client.Collection("system").Doc("dashboard")
	if _, err := ref.Set(ctx, snapshot); err != nil {
		return fmt.Errorf("save dashboard snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) Get(ctx context.Context) (model.DashboardSnapshot, error) {
	ref := r.client.Collection("system").Doc("dashboard")
	snap, err := ref.Get(ctx)
	if err != nil {
		return model.DashboardSnapshot{}, fmt.Errorf("get dashboard snapshot: %w", err)
	}
	var snapshot model.DashboardSnapshot
	if err := snap.DataTo(&snapshot); err != nil {
		return model.DashboardSnapshot{}, fmt.Errorf("decode dashboard snapshot: %w", err)
	}
	return snapshot, nil
}
