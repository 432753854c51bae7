package donation

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DonationRepository struct {
	collection *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{collection: db.Collection("donations")}
}

func (r *DonationRepository) Create(ctx context.Context, donation *Donation) error {
	_, err := r.collection.InsertOne(ctx, donation)
	return err
}

func (r *DonationRepository) List(ctx context.Context, email string) ([]Donation, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	donations := []Donation{}
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}
