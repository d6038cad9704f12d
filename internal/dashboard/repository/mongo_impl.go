package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gridboard/internal/dashboard/model"
)

type MongoRepository struct {
	Dashboards *mongo.Collection
	Revisions  *mongo.Collection
}

func NewMongoRepository(db *mongo.Database, dashboardsCollection, revisionsCollection string) *MongoRepository {
	return &MongoRepository{
		Dashboards: db.Collection(dashboardsCollection),
		Revisions:  db.Collection(revisionsCollection),
	}
}

// Persisted document shape: placement lives in the layout array keyed
// by widget id, everything else per widget lives under components.
type dashboardDoc struct {
	ID          string                  `bson:"_id"`
	Name        string                  `bson:"name"`
	Description string                  `bson:"description,omitempty"`
	Owner       string                  `bson:"owner"`
	IsPublic    bool                    `bson:"is_public"`
	Layout      []layoutDoc             `bson:"layout"`
	Components  map[string]componentDoc `bson:"components"`
	Created     time.Time               `bson:"created"`
	Updated     time.Time               `bson:"updated"`
}

type layoutDoc struct {
	I           string `bson:"i"`
	X           int    `bson:"x"`
	Y           int    `bson:"y"`
	W           int    `bson:"w"`
	H           int    `bson:"h"`
	MinW        int    `bson:"min_w,omitempty"`
	MinH        int    `bson:"min_h,omitempty"`
	MaxW        int    `bson:"max_w,omitempty"`
	MaxH        int    `bson:"max_h,omitempty"`
	Static      bool   `bson:"static,omitempty"`
	IsDraggable bool   `bson:"is_draggable"`
	IsResizable bool   `bson:"is_resizable"`
}

type componentDoc struct {
	Type        model.WidgetType   `bson:"type"`
	Title       string             `bson:"title"`
	TagID       string             `bson:"tag_id,omitempty"`
	TagIDs      []string           `bson:"tag_ids,omitempty"`
	RefreshRate int                `bson:"refresh_rate,omitempty"`
	Config      model.WidgetConfig `bson:"config"`
}

func toDoc(d *model.Dashboard) *dashboardDoc {
	doc := &dashboardDoc{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Owner:       d.Owner,
		IsPublic:    d.IsPublic,
		Layout:      make([]layoutDoc, 0, len(d.Widgets)),
		Components:  make(map[string]componentDoc, len(d.Widgets)),
		Created:     d.Created,
		Updated:     d.Updated,
	}
	for _, w := range d.Widgets {
		doc.Layout = append(doc.Layout, layoutDoc{
			I:           w.ID,
			X:           w.GridPos.X,
			Y:           w.GridPos.Y,
			W:           w.GridPos.W,
			H:           w.GridPos.H,
			MinW:        w.GridPos.MinW,
			MinH:        w.GridPos.MinH,
			MaxW:        w.GridPos.MaxW,
			MaxH:        w.GridPos.MaxH,
			Static:      w.GridPos.Static,
			IsDraggable: w.GridPos.IsDraggable,
			IsResizable: w.GridPos.IsResizable,
		})
		doc.Components[w.ID] = componentDoc{
			Type:        w.Type,
			Title:       w.Title,
			TagID:       w.TagID,
			TagIDs:      w.TagIDs,
			RefreshRate: w.RefreshRate,
			Config:      w.Config,
		}
	}
	return doc
}

func fromDoc(doc *dashboardDoc) *model.Dashboard {
	d := &model.Dashboard{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Owner:       doc.Owner,
		IsPublic:    doc.IsPublic,
		Widgets:     make([]model.Widget, 0, len(doc.Layout)),
		Created:     doc.Created,
		Updated:     doc.Updated,
	}
	// Layout order is authoritative; entries without a component and
	// components without a layout entry are both tolerated.
	seen := make(map[string]bool, len(doc.Layout))
	for _, item := range doc.Layout {
		comp, ok := doc.Components[item.I]
		if !ok {
			continue
		}
		seen[item.I] = true
		d.Widgets = append(d.Widgets, model.Widget{
			ID:          item.I,
			Type:        comp.Type,
			Title:       comp.Title,
			TagID:       comp.TagID,
			TagIDs:      comp.TagIDs,
			RefreshRate: comp.RefreshRate,
			GridPos: model.GridPos{
				X:           item.X,
				Y:           item.Y,
				W:           item.W,
				H:           item.H,
				MinW:        item.MinW,
				MinH:        item.MinH,
				MaxW:        item.MaxW,
				MaxH:        item.MaxH,
				Static:      item.Static,
				IsDraggable: item.IsDraggable,
				IsResizable: item.IsResizable,
			},
			Config: comp.Config,
		})
	}
	for id, comp := range doc.Components {
		if seen[id] {
			continue
		}
		d.Widgets = append(d.Widgets, model.Widget{
			ID:          id,
			Type:        comp.Type,
			Title:       comp.Title,
			TagID:       comp.TagID,
			TagIDs:      comp.TagIDs,
			RefreshRate: comp.RefreshRate,
			Config:      comp.Config,
		})
	}
	return d
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "updated", Value: -1}},
			Options: options.Index().SetName("idx_owner_updated"),
		},
		{
			Keys:    bson.D{{Key: "is_public", Value: 1}},
			Options: options.Index().SetName("idx_is_public"),
		},
		{
			Keys:    bson.D{{Key: "name", Value: "text"}},
			Options: options.Index().SetName("idx_name_text"),
		},
	}
	_, err := r.Dashboards.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MongoRepository) LoadDashboard(ctx context.Context, id string) (*model.Dashboard, error) {
	var doc dashboardDoc
	err := r.Dashboards.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fromDoc(&doc), nil
}

func (r *MongoRepository) SaveDashboard(ctx context.Context, d *model.Dashboard) (*model.Dashboard, error) {
	now := time.Now().UTC()
	if d.ID == "" {
		d.ID = uuid.New().String()
		d.Created = now
	}
	if d.Created.IsZero() {
		d.Created = now
	}
	d.Updated = now

	doc := toDoc(d)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.Dashboards.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return d, nil
}

func (r *MongoRepository) DeleteDashboard(ctx context.Context, id string) error {
	res, err := r.Dashboards.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// listQuery builds the filter document. Search text is a substring
// match, so regex metacharacters are escaped before they reach the
// server.
func listQuery(filter model.DashboardFilter) bson.M {
	query := bson.M{}
	if filter.Owner != "" {
		query["owner"] = filter.Owner
	}
	if filter.IsPublic != nil {
		query["is_public"] = *filter.IsPublic
	}
	if filter.SearchText != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.SearchText), Options: "i"}}
	}
	return query
}

func (r *MongoRepository) ListDashboards(ctx context.Context, filter model.DashboardFilter) ([]*model.DashboardSummary, error) {
	query := listQuery(filter)

	opts := options.Find().SetSort(bson.D{{Key: "updated", Value: -1}})
	cursor, err := r.Dashboards.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*model.DashboardSummary
	for cursor.Next(ctx) {
		var doc dashboardDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, &model.DashboardSummary{
			ID:          doc.ID,
			Name:        doc.Name,
			Description: doc.Description,
			Owner:       doc.Owner,
			IsPublic:    doc.IsPublic,
			WidgetCount: len(doc.Components),
			Updated:     doc.Updated,
		})
	}
	return out, cursor.Err()
}
