package donation

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"
)

// DonationStore is the persistence surface the service needs;
// *DonationRepository implements it against MongoDB.
type DonationStore interface {
	Create(ctx context.Context, donation *Donation) error
	List(ctx context.Context, email string) ([]Donation, error)
}

// Mailer sends the thank-you receipt. *config.EmailService implements it.
type Mailer interface {
	Send(to, subject, html string) error
}

type DonationService struct {
	store  DonationStore
	mailer Mailer
}

func NewDonationService(store DonationStore, mailer Mailer) *DonationService {
	return &DonationService{store: store, mailer: mailer}
}

// Donate records the donation and sends a best-effort receipt mail. A mail
// failure is logged and never surfaces to the donor.
func (s *DonationService) Donate(ctx context.Context, donation *Donation) error {
	donation.CreatedAt = time.Now()
	if err := s.store.Create(ctx, donation); err != nil {
		return err
	}

	if s.mailer != nil && donation.Email != "" {
		subject := "Thank you for your donation"
		body := fmt.Sprintf("Dear %s,<br>Your donation of %.2f has been received.", donation.Name, donation.Amount)
		if err := s.mailer.Send(donation.Email, subject, body); err != nil {
			log.Println("Failed to send donation receipt:", err)
		}
	}
	return nil
}

func (s *DonationService) ListDonations(ctx context.Context, email string) ([]Donation, error) {
	return s.store.List(ctx, email)
}

func (s *DonationService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	donations, err := s.store.List(ctx, "")
	if err != nil {
		return nil, err
	}
	return rankDonors(donations), nil
}

// rankDonors groups donations by email, sums the amounts, keeps the first
// display name seen per donor, and orders by total descending. The relative
// order of equal totals is unspecified.
func rankDonors(donations []Donation) []LeaderboardEntry {
	totals := map[string]*LeaderboardEntry{}
	for _, d := range donations {
		entry, ok := totals[d.Email]
		if !ok {
			entry = &LeaderboardEntry{Email: d.Email, Name: d.Name}
			totals[d.Email] = entry
		}
		entry.TotalAmount += d.Amount
	}

	ranked := make([]LeaderboardEntry, 0, len(totals))
	for _, entry := range totals {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].TotalAmount > ranked[j].TotalAmount
	})
	return ranked
}
