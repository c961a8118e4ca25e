package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"edcstudio/internal/model"
	"edcstudio/internal/repository"
)

const pondFilesCollection = "pond_files"

// PondFileMongo is the MongoDB implementation of repository.PondFileRepository.
type PondFileMongo struct {
	coll *mongo.Collection
}

// NewPondFileMongo creates a new PondFileMongo repository.
func NewPondFileMongo(db *mongo.Database) *PondFileMongo {
	return &PondFileMongo{coll: db.Collection(pondFilesCollection)}
}

var _ repository.PondFileRepository = (*PondFileMongo)(nil)

type pondFileDoc struct {
	OID            primitive.ObjectID `bson:"_id,omitempty"`
	model.PondFile `bson:",inline"`
}

func (r *PondFileMongo) Upsert(ctx context.Context, f *model.PondFile) error {
	filter := bson.M{"username": f.Username, "filename": f.Filename}
	update := bson.M{"$set": bson.M{
		"username":     f.Username,
		"filename":     f.Filename,
		"storage_key":  f.StorageKey,
		"size":         f.Size,
		"content_type": f.ContentType,
		"modified":     f.Modified,
	}}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *PondFileMongo) FindByUser(ctx context.Context, username string) ([]model.PondFile, error) {
	cur, err := r.coll.Find(ctx, bson.M{"username": username})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]model.PondFile, 0)
	for cur.Next(ctx) {
		var doc pondFileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		f := doc.PondFile
		f.ID = doc.OID.Hex()
		out = append(out, f)
	}
	return out, cur.Err()
}

func (r *PondFileMongo) Find(ctx context.Context, username, filename string) (*model.PondFile, error) {
	var doc pondFileDoc
	err := r.coll.FindOne(ctx, bson.M{"username": username, "filename": filename}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	f := doc.PondFile
	f.ID = doc.OID.Hex()
	return &f, nil
}

func (r *PondFileMongo) Delete(ctx context.Context, username, filename string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"username": username, "filename": filename})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
