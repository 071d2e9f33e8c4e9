package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

// MongoCatalog stores whiskeys in a MongoDB collection.
type MongoCatalog struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewMongoCatalog(coll *mongo.Collection, logger *zap.Logger) *MongoCatalog {
	return &MongoCatalog{coll: coll, logger: logger}
}

func (c *MongoCatalog) List(ctx context.Context) []models.Whiskey {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := c.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.logger.Error("list whiskeys failed", zap.Error(err))
		return []models.Whiskey{}
	}
	defer cursor.Close(ctx)

	whiskeys := make([]models.Whiskey, 0)
	for cursor.Next(ctx) {
		var w models.Whiskey
		if err := cursor.Decode(&w); err != nil {
			c.logger.Error("decode whiskey failed", zap.Error(err))
			return []models.Whiskey{}
		}
		whiskeys = append(whiskeys, w)
	}
	if err := cursor.Err(); err != nil {
		c.logger.Error("list whiskeys cursor failed", zap.Error(err))
		return []models.Whiskey{}
	}
	return whiskeys
}

func (c *MongoCatalog) GetByID(ctx context.Context, id string) *models.Whiskey {
	var w models.Whiskey
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&w)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			c.logger.Error("get whiskey failed", zap.String("id", id), zap.Error(err))
		}
		return nil
	}
	return &w
}

func (c *MongoCatalog) Create(ctx context.Context, req models.WhiskeyRequest) *models.Whiskey {
	w := models.Whiskey{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Distillery:  req.Distillery,
		Type:        req.Type,
		Region:      req.Region,
		Age:         req.Age,
		Abv:         req.Abv,
		Description: req.Description,
		Attributes:  req.Attributes,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if w.Attributes == nil {
		w.Attributes = []string{}
	}
	if _, err := c.coll.InsertOne(ctx, w); err != nil {
		c.logger.Error("create whiskey failed", zap.String("name", req.Name), zap.Error(err))
		return nil
	}
	return &w
}

func (c *MongoCatalog) Update(ctx context.Context, id string, req models.WhiskeyRequest) *models.Whiskey {
	update := bson.M{"$set": bson.M{
		"name":        req.Name,
		"distillery":  req.Distillery,
		"type":        req.Type,
		"region":      req.Region,
		"age":         req.Age,
		"abv":         req.Abv,
		"description": req.Description,
		"attributes":  req.Attributes,
		"image_url":   req.ImageURL,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var w models.Whiskey
	err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&w)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			c.logger.Error("update whiskey failed", zap.String("id", id), zap.Error(err))
		}
		return nil
	}
	return &w
}

func (c *MongoCatalog) Delete(ctx context.Context, id string) bool {
	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		c.logger.Error("delete whiskey failed", zap.String("id", id), zap.Error(err))
		return false
	}
	return result.DeletedCount == 1
}

// Seed inserts the given whiskeys when the collection is empty. Used at boot
// to load the sample catalog into a fresh database.
func (c *MongoCatalog) Seed(ctx context.Context, whiskeys []models.Whiskey) error {
	count, err := c.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	docs := make([]interface{}, len(whiskeys))
	for i, w := range whiskeys {
		docs[i] = w
	}
	_, err = c.coll.InsertMany(ctx, docs)
	return err
}
