package campaign

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID     = errors.New("Invalid ID format")
	ErrInvalidAmount = errors.New("newAmount must be a positive number")
	ErrNotFound      = errors.New("campaign not found")
)

// CampaignStore is the persistence surface the service needs;
// *CampaignRepository implements it against MongoDB.
type CampaignStore interface {
	Create(ctx context.Context, campaign *Campaign) error
	List(ctx context.Context, email string) ([]Campaign, error)
	FindRawByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Campaign, error)
	SetCollectedAmount(ctx context.Context, id primitive.ObjectID, amount float64) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type CampaignService struct {
	store CampaignStore
}

func NewCampaignService(store CampaignStore) *CampaignService {
	return &CampaignService{store: store}
}

func (s *CampaignService) AddCampaign(ctx context.Context, campaign *Campaign) error {
	return s.store.Create(ctx, campaign)
}

func (s *CampaignService) ListCampaigns(ctx context.Context, email string) ([]Campaign, error) {
	return s.store.List(ctx, email)
}

func (s *CampaignService) GetCampaign(ctx context.Context, id string) (*Campaign, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	campaign, err := s.store.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrNotFound
	}
	return campaign, nil
}

// Contribute adds newAmount to the campaign's collected total and returns the
// new total. This is a read-modify-write sequence, not an atomic increment:
// concurrent contributions to the same campaign can lose updates.
func (s *CampaignService) Contribute(ctx context.Context, id string, newAmount float64) (float64, error) {
	if newAmount <= 0 {
		return 0, ErrInvalidAmount
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	doc, err := s.store.FindRawByID(ctx, oid)
	if err != nil {
		return 0, err
	}
	if doc == nil {
		return 0, ErrNotFound
	}

	total := numericAmount(doc["collectedAmount"]) + newAmount
	if err := s.store.SetCollectedAmount(ctx, oid, total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.store.Delete(ctx, oid)
}

// numericAmount coerces a stored collectedAmount to a float64. Absent or
// non-numeric values count as zero.
func numericAmount(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
