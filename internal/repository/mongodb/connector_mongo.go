// Package mongodb implements the repository interfaces on MongoDB.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"edcstudio/internal/model"
	"edcstudio/internal/repository"
)

const connectorsCollection = "connectors"

// ConnectorMongo is the MongoDB implementation of repository.ConnectorRepository.
type ConnectorMongo struct {
	coll *mongo.Collection
}

// NewConnectorMongo creates a new ConnectorMongo repository.
func NewConnectorMongo(db *mongo.Database) *ConnectorMongo {
	return &ConnectorMongo{coll: db.Collection(connectorsCollection)}
}

var _ repository.ConnectorRepository = (*ConnectorMongo)(nil)

// connectorDoc pairs the domain model with its Mongo object ID.
type connectorDoc struct {
	OID             primitive.ObjectID `bson:"_id,omitempty"`
	model.Connector `bson:",inline"`
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrNotFound
	}
	return oid, nil
}

func (r *ConnectorMongo) Create(ctx context.Context, c *model.Connector) (string, error) {
	res, err := r.coll.InsertOne(ctx, connectorDoc{Connector: *c})
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ConnectorMongo) FindByID(ctx context.Context, id string) (*model.Connector, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc connectorDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	c := doc.Connector
	c.ID = doc.OID.Hex()
	return &c, nil
}

func (r *ConnectorMongo) FindAll(ctx context.Context) ([]model.Connector, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]model.Connector, 0)
	for cur.Next(ctx) {
		var doc connectorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		c := doc.Connector
		c.ID = doc.OID.Hex()
		out = append(out, c)
	}
	return out, cur.Err()
}

func (r *ConnectorMongo) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ConnectorMongo) UpdateState(ctx context.Context, id, state string) error {
	return r.Update(ctx, id, map[string]any{"state": state})
}

func (r *ConnectorMongo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
