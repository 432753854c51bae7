package campaign

import "go.mongodb.org/mongo-driver/bson/primitive"

type Campaign struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	TargetAmount    float64            `bson:"targetAmount,omitempty" json:"targetAmount,omitempty"`
	CollectedAmount float64            `bson:"collectedAmount" json:"collectedAmount"`
}

type ContributeRequest struct {
	NewAmount float64 `json:"newAmount"`
}
