package supply

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID = errors.New("Invalid ID format")
	ErrNotFound  = errors.New("not found")
)

// SupplyStore is the persistence surface the service needs; *SupplyRepository
// implements it against MongoDB.
type SupplyStore interface {
	CreateSupply(ctx context.Context, supply *Supply) error
	ListSupplies(ctx context.Context, email string) ([]Supply, error)
	FindSupplyByID(ctx context.Context, id primitive.ObjectID) (*Supply, error)
	SetSupplyApplied(ctx context.Context, id primitive.ObjectID, isApplied bool) (int64, error)
	SetSupplyApproved(ctx context.Context, id primitive.ObjectID, isApproved bool) (int64, error)
	DeleteSupply(ctx context.Context, id primitive.ObjectID) (int64, error)
	CreateApplication(ctx context.Context, application *Application) error
	ListApplications(ctx context.Context, email string) ([]Application, error)
	SetApplicationApproved(ctx context.Context, id primitive.ObjectID, isApproved bool) (int64, error)
	DeleteApplication(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type SupplyService struct {
	store SupplyStore
}

func NewSupplyService(store SupplyStore) *SupplyService {
	return &SupplyService{store: store}
}

func (s *SupplyService) AddSupply(ctx context.Context, supply *Supply) error {
	return s.store.CreateSupply(ctx, supply)
}

func (s *SupplyService) ListSupplies(ctx context.Context, email string) ([]Supply, error) {
	return s.store.ListSupplies(ctx, email)
}

func (s *SupplyService) GetSupply(ctx context.Context, id string) (*Supply, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	supply, err := s.store.FindSupplyByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, ErrNotFound
	}
	return supply, nil
}

func (s *SupplyService) UpdateApplied(ctx context.Context, id string, isApplied bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	modified, err := s.store.SetSupplyApplied(ctx, oid, isApplied)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SupplyService) DeleteSupply(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.store.DeleteSupply(ctx, oid)
}

func (s *SupplyService) AddApplication(ctx context.Context, application *Application) error {
	return s.store.CreateApplication(ctx, application)
}

func (s *SupplyService) ListApplications(ctx context.Context, email string) ([]Application, error) {
	return s.store.ListApplications(ctx, email)
}

func (s *SupplyService) DenyApplication(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	return s.store.DeleteApplication(ctx, oid)
}

// Approve sets isApproved on the application and, when supplyID is non-empty,
// on the supply as well. The two updates are independent: the call succeeds
// when at least one document changed, and reports not-found only when neither
// did. A partial write (one collection updated, the other not) is left as-is.
func (s *SupplyService) Approve(ctx context.Context, applyID, supplyID string, isApproved bool) error {
	applyOID, err := primitive.ObjectIDFromHex(applyID)
	if err != nil {
		return ErrInvalidID
	}
	var supplyOID primitive.ObjectID
	if supplyID != "" {
		supplyOID, err = primitive.ObjectIDFromHex(supplyID)
		if err != nil {
			return ErrInvalidID
		}
	}

	var modified int64
	applyModified, applyErr := s.store.SetApplicationApproved(ctx, applyOID, isApproved)
	if applyErr == nil {
		modified += applyModified
	}

	var supplyErr error
	if supplyID != "" {
		var supplyModified int64
		supplyModified, supplyErr = s.store.SetSupplyApproved(ctx, supplyOID, isApproved)
		if supplyErr == nil {
			modified += supplyModified
		}
	}

	if modified > 0 {
		return nil
	}
	if applyErr != nil {
		return applyErr
	}
	if supplyErr != nil {
		return supplyErr
	}
	return ErrNotFound
}
