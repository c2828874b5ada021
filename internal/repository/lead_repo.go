package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/estatedesk/crm-reports-api/pkg/model"
	"google.golang.org/api/iterator"
)

const leadsCollection = "leads"

// LeadRepository handles Firestore reads for lead documents.
type LeadRepository struct {
	client *firestore.Client
}

func NewLeadRepository(client *firestore.Client) *LeadRepository {
	return &LeadRepository{client: client}
}

// ListPublished loads every published lead.
func (r *LeadRepository) ListPublished(ctx context.Context) ([]model.Lead, error) {
	return r.list(ctx, r.published())
}

// ListRecent loads the most recently created published leads, newest first.
func (r *LeadRepository) ListRecent(ctx context.Context, limit int) ([]model.Lead, error) {
	return r.list(ctx, r.published().OrderBy("createdAt", firestore.Desc).Limit(limit))
}

// CountPublished counts all published leads server-side.
func (r *LeadRepository) CountPublished(ctx context.Context) (int64, error) {
	return countQuery(ctx, r.published(), leadsCollection)
}

// CountCreatedBetween counts published leads created in [start, end).
func (r *LeadRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	q := r.published().
		Where("createdAt", ">=", start).
		Where("createdAt", "<", end)
	return countQuery(ctx, q, leadsCollection)
}

func (r *LeadRepository) published() firestore.Query {
	return r.client.Collection(leadsCollection).Where("published", "==", true)
}

func (r *LeadRepository) list(ctx context.Context, q firestore.Query) ([]model.Lead, error) {
	iter := q.Documents(ctx)
	var result []model.Lead
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate leads: %w", err)
		}
		var l model.Lead
		if err := doc.DataTo(&l); err != nil {
			return nil, fmt.Errorf("decode lead %s: %w", doc.Ref.ID, err)
		}
		if l.ID == "" {
			l.ID = doc.Ref.ID
		}
		result = append(result, l)
	}
	return result, nil
}
