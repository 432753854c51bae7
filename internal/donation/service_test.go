package donation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeDonationStore struct {
	donations []Donation
}

func (f *fakeDonationStore) Create(ctx context.Context, donation *Donation) error {
	donation.ID = primitive.NewObjectID()
	f.donations = append(f.donations, *donation)
	return nil
}

func (f *fakeDonationStore) List(ctx context.Context, email string) ([]Donation, error) {
	donations := []Donation{}
	for _, d := range f.donations {
		if email == "" || d.Email == email {
			donations = append(donations, d)
		}
	}
	return donations, nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(to, subject, html string) error {
	f.sent = append(f.sent, to)
	return f.err
}

func TestRankDonors(t *testing.T) {
	donations := []Donation{
		{Email: "a@example.com", Name: "A", Amount: 10},
		{Email: "b@example.com", Name: "B", Amount: 30},
		{Email: "a@example.com", Name: "A", Amount: 5},
	}

	ranked := rankDonors(donations)
	require.Len(t, ranked, 2)
	assert.Equal(t, "b@example.com", ranked[0].Email)
	assert.Equal(t, 30.0, ranked[0].TotalAmount)
	assert.Equal(t, "a@example.com", ranked[1].Email)
	assert.Equal(t, 15.0, ranked[1].TotalAmount)
	assert.Equal(t, "A", ranked[1].Name)
}

func TestRankDonorsEmpty(t *testing.T) {
	assert.Empty(t, rankDonors(nil))
}

func TestLeaderboard(t *testing.T) {
	store := &fakeDonationStore{}
	service := NewDonationService(store, nil)
	ctx := context.Background()

	require.NoError(t, service.Donate(ctx, &Donation{Email: "a@example.com", Name: "A", Amount: 10}))
	require.NoError(t, service.Donate(ctx, &Donation{Email: "b@example.com", Name: "B", Amount: 30}))
	require.NoError(t, service.Donate(ctx, &Donation{Email: "a@example.com", Name: "A", Amount: 5}))

	ranked, err := service.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "b@example.com", ranked[0].Email)
	assert.Equal(t, 15.0, ranked[1].TotalAmount)
}

func TestDonateSendsReceipt(t *testing.T) {
	store := &fakeDonationStore{}
	mailer := &fakeMailer{}
	service := NewDonationService(store, mailer)

	require.NoError(t, service.Donate(context.Background(), &Donation{Email: "a@example.com", Name: "A", Amount: 10}))
	assert.Equal(t, []string{"a@example.com"}, mailer.sent)
	assert.False(t, store.donations[0].CreatedAt.IsZero())
}

func TestDonateIgnoresMailFailure(t *testing.T) {
	store := &fakeDonationStore{}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	service := NewDonationService(store, mailer)

	require.NoError(t, service.Donate(context.Background(), &Donation{Email: "a@example.com", Name: "A", Amount: 10}))
	assert.Len(t, store.donations, 1)
}
