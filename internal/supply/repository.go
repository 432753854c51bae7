package supply

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SupplyRepository handles DB operations for supplies and the applications
// filed against them.
type SupplyRepository struct {
	supplyCollection *mongo.Collection
	applyCollection  *mongo.Collection
}

func NewSupplyRepository(db *mongo.Database) *SupplyRepository {
	return &SupplyRepository{
		supplyCollection: db.Collection("supply"),
		applyCollection:  db.Collection("applications"),
	}
}

// Supply operations
func (r *SupplyRepository) CreateSupply(ctx context.Context, supply *Supply) error {
	_, err := r.supplyCollection.InsertOne(ctx, supply)
	return err
}

func (r *SupplyRepository) ListSupplies(ctx context.Context, email string) ([]Supply, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	cursor, err := r.supplyCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	supplies := []Supply{}
	if err := cursor.All(ctx, &supplies); err != nil {
		return nil, err
	}
	return supplies, nil
}

func (r *SupplyRepository) FindSupplyByID(ctx context.Context, id primitive.ObjectID) (*Supply, error) {
	var supply Supply
	err := r.supplyCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&supply)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &supply, nil
}

func (r *SupplyRepository) SetSupplyApplied(ctx context.Context, id primitive.ObjectID, isApplied bool) (int64, error) {
	res, err := r.supplyCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isApplied": isApplied}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *SupplyRepository) SetSupplyApproved(ctx context.Context, id primitive.ObjectID, isApproved bool) (int64, error) {
	res, err := r.supplyCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isApproved": isApproved}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *SupplyRepository) DeleteSupply(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.supplyCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Application operations
func (r *SupplyRepository) CreateApplication(ctx context.Context, application *Application) error {
	_, err := r.applyCollection.InsertOne(ctx, application)
	return err
}

func (r *SupplyRepository) ListApplications(ctx context.Context, email string) ([]Application, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	cursor, err := r.applyCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	applications := []Application{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *SupplyRepository) SetApplicationApproved(ctx context.Context, id primitive.ObjectID, isApproved bool) (int64, error) {
	res, err := r.applyCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isApproved": isApproved}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *SupplyRepository) DeleteApplication(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.applyCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
