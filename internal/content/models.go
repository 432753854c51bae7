package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Rating  float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment string             `bson:"comment" json:"comment"`
}

// Volunteer signup is the only ancillary record with a uniqueness rule: one
// record per email, enforced by a pre-insert lookup.
type Volunteer struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location string             `bson:"location,omitempty" json:"location,omitempty"`
}

type News struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
	Image   string             `bson:"image,omitempty" json:"image,omitempty"`
	Date    time.Time          `bson:"date" json:"date"`
}
