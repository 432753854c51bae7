package donation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation is immutable once created; the leaderboard is aggregated from
// these records.
type Donation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Amount     float64            `bson:"amount" json:"amount"`
	CampaignID string             `bson:"campaignId,omitempty" json:"campaignId,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// LeaderboardEntry is one donor's grouped total. Name is the display name of
// whichever donation record the grouping saw first for that email.
type LeaderboardEntry struct {
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	TotalAmount float64 `json:"totalAmount"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}
