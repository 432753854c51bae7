package campaign

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CampaignRepository struct {
	collection *mongo.Collection
}

func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{collection: db.Collection("campaigns")}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *Campaign) error {
	_, err := r.collection.InsertOne(ctx, campaign)
	return err
}

func (r *CampaignRepository) List(ctx context.Context, email string) ([]Campaign, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	campaigns := []Campaign{}
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// FindRawByID returns the campaign as a raw document so the contribution path
// can tolerate legacy values in collectedAmount that do not decode as a number.
func (r *CampaignRepository) FindRawByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Campaign, error) {
	var campaign Campaign
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepository) SetCollectedAmount(ctx context.Context, id primitive.ObjectID, amount float64) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"collectedAmount": amount}})
	return err
}

func (r *CampaignRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
