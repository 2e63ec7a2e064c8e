package repository

import (
	"context"
	"fmt"

	"github.com/RigelNana/arksignup/services/signup-service/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoSignupRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoSignupRepository connects with Server API v1. Connecting does not
// contact the deployment; call Ping for that.
func NewMongoSignupRepository(ctx context.Context, uri, database, collection string) (*MongoSignupRepository, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}
	return &MongoSignupRepository{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// NewMongoSignupRepositoryFromCollection wraps an existing collection handle.
func NewMongoSignupRepositoryFromCollection(coll *mongo.Collection) *MongoSignupRepository {
	return &MongoSignupRepository{client: coll.Database().Client(), coll: coll}
}

func (r *MongoSignupRepository) Insert(ctx context.Context, s models.Signup) (string, error) {
	doc := bson.M(s.WithoutID())
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert signup: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (r *MongoSignupRepository) FindAll(ctx context.Context) ([]models.Signup, error) {
	opts := options.Find().SetProjection(bson.D{{Key: models.IDField, Value: 0}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find signups: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode signups: %w", err)
	}

	out := make([]models.Signup, 0, len(docs))
	for _, doc := range docs {
		// projection already drops _id; strip again in case a server ignores it
		out = append(out, models.Signup(doc).WithoutID())
	}
	return out, nil
}

func (r *MongoSignupRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *MongoSignupRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoSignupRepository) Driver() string { return "mongo" }
