package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/estatedesk/crm-reports-api/pkg/model"
	"google.golang.org/api/iterator"
)

const (
	propertiesCollection    = "properties"
	propertyTypesCollection = "property_types"
)

// soldStatus is the exact stored literal the legacy data uses for closed
// sales. Several reports match it verbatim instead of normalizing; see the
// reports package.
const soldStatus = "SOLD"

// PropertyRepository handles Firestore reads for property documents.
type PropertyRepository struct {
	client *firestore.Client
}

func NewPropertyRepository(client *firestore.Client) *PropertyRepository {
	return &PropertyRepository{client: client}
}

// ListPublished loads every published property.
func (r *PropertyRepository) ListPublished(ctx context.Context) ([]model.Property, error) {
	return r.list(ctx, r.published())
}

// ListPublishedWithTypes loads every published property with its property
// type reference resolved.
func (r *PropertyRepository) ListPublishedWithTypes(ctx context.Context) ([]model.Property, error) {
	properties, err := r.list(ctx, r.published())
	if err != nil {
		return nil, err
	}
	if err := r.populateTypes(ctx, properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// ListSold loads published properties whose stored status is exactly "SOLD".
func (r *PropertyRepository) ListSold(ctx context.Context) ([]model.Property, error) {
	return r.list(ctx, r.published().Where("propertyStatus", "==", soldStatus))
}

// ListSoldUpdatedBetween loads exact-"SOLD" properties updated in [start, end).
func (r *PropertyRepository) ListSoldUpdatedBetween(ctx context.Context, start, end time.Time) ([]model.Property, error) {
	q := r.published().
		Where("propertyStatus", "==", soldStatus).
		Where("updatedAt", ">=", start).
		Where("updatedAt", "<", end)
	return r.list(ctx, q)
}

// ListRecent loads the most recently created published properties, newest
// first, with types resolved.
func (r *PropertyRepository) ListRecent(ctx context.Context, limit int) ([]model.Property, error) {
	q := r.published().OrderBy("createdAt", firestore.Desc).Limit(limit)
	properties, err := r.list(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.populateTypes(ctx, properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// TopByPrice loads the highest-priced published properties with types resolved.
func (r *PropertyRepository) TopByPrice(ctx context.Context, limit int) ([]model.Property, error) {
	q := r.published().OrderBy("price", firestore.Desc).Limit(limit)
	properties, err := r.list(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.populateTypes(ctx, properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// TopByViews loads the most viewed published properties with types resolved.
func (r *PropertyRepository) TopByViews(ctx context.Context, limit int) ([]model.Property, error) {
	q := r.published().OrderBy("views", firestore.Desc).Limit(limit)
	properties, err := r.list(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.populateTypes(ctx, properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// CountCreatedBetween counts published properties created in [start, end).
func (r *PropertyRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	q := r.published().
		Where("createdAt", ">=", start).
		Where("createdAt", "<", end)
	return countQuery(ctx, q, propertiesCollection)
}

func (r *PropertyRepository) published() firestore.Query {
	return r.client.Collection(propertiesCollection).Where("published", "==", true)
}

func (r *PropertyRepository) list(ctx context.Context, q firestore.Query) ([]model.Property, error) {
	iter := q.Documents(ctx)
	var result []model.Property
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate properties: %w", err)
		}
		var p model.Property
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("decode property %s: %w", doc.Ref.ID, err)
		}
		if p.ID == "" {
			p.ID = doc.Ref.ID
		}
		result = append(result, p)
	}
	return result, nil
}

// populateTypes resolves propertyTypeId references against the
// property_types collection in one pass.
func (r *PropertyRepository) populateTypes(ctx context.Context, properties []model.Property) error {
	if len(properties) == 0 {
		return nil
	}
	types, err := r.fetchTypes(ctx)
	if err != nil {
		return err
	}
	for i := range properties {
		if t, ok := types[properties[i].PropertyTypeID]; ok {
			resolved := t
			properties[i].PropertyType = &resolved
		}
	}
	return nil
}

func (r *PropertyRepository) fetchTypes(ctx context.Context) (map[string]model.PropertyType, error) {
	iter := r.client.Collection(propertyTypesCollection).Documents(ctx)
	result := make(map[string]model.PropertyType)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate property types: %w", err)
		}
		var t model.PropertyType
		if err := doc.DataTo(&t); err != nil {
			return nil, fmt.Errorf("decode property type %s: %w", doc.Ref.ID, err)
		}
		if t.ID == "" {
			t.ID = doc.Ref.ID
		}
		result[t.ID] = t
	}
	return result, nil
}
