package supply

import "go.mongodb.org/mongo-driver/bson/primitive"

// Supply is a relief supply posting. The email identifies the posting owner;
// there is no referential link to the users collection beyond that string.
type Supply struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Quantity    string             `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	IsApplied   bool               `bson:"isApplied" json:"isApplied"`
	IsApproved  bool               `bson:"isApproved" json:"isApproved"`
}

// Application is an aid application against a posted supply. SupplyID carries
// the supply's hex id as posted by the client; deleting a supply does not
// cascade to its applications.
type Application struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location   string             `bson:"location,omitempty" json:"location,omitempty"`
	SupplyID   string             `bson:"supplyId,omitempty" json:"supplyId,omitempty"`
	IsApproved bool               `bson:"isApproved" json:"isApproved"`
}

type UpdateAppliedRequest struct {
	IsApplied bool `json:"isApplied"`
}

type ApproveRequest struct {
	IsApproved bool `json:"isApproved"`
}
