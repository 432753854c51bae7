package content

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

var ErrVolunteerExists = errors.New("Already registered as volunteer")

// ContentStore is the persistence surface the service needs;
// *ContentRepository implements it against MongoDB.
type ContentStore interface {
	CreateTestimonial(ctx context.Context, testimonial *Testimonial) error
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	CreateReview(ctx context.Context, review *Review) error
	ListReviews(ctx context.Context) ([]Review, error)
	FindVolunteerByEmail(ctx context.Context, email string) (*Volunteer, error)
	CreateVolunteer(ctx context.Context, volunteer *Volunteer) error
	ListVolunteers(ctx context.Context) ([]Volunteer, error)
	CreateNews(ctx context.Context, news *News) error
	ListNews(ctx context.Context) ([]News, error)
}

// Mailer sends the volunteer welcome mail. *config.EmailService implements it.
type Mailer interface {
	Send(to, subject, html string) error
}

type ContentService struct {
	store  ContentStore
	mailer Mailer
}

func NewContentService(store ContentStore, mailer Mailer) *ContentService {
	return &ContentService{store: store, mailer: mailer}
}

func (s *ContentService) AddTestimonial(ctx context.Context, testimonial *Testimonial) error {
	testimonial.CreatedAt = time.Now()
	return s.store.CreateTestimonial(ctx, testimonial)
}

func (s *ContentService) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	return s.store.ListTestimonials(ctx)
}

func (s *ContentService) AddReview(ctx context.Context, review *Review) error {
	return s.store.CreateReview(ctx, review)
}

func (s *ContentService) ListReviews(ctx context.Context) ([]Review, error) {
	return s.store.ListReviews(ctx)
}

// RegisterVolunteer enforces one volunteer record per email via a pre-insert
// lookup, then sends a best-effort welcome mail.
func (s *ContentService) RegisterVolunteer(ctx context.Context, volunteer *Volunteer) error {
	existing, err := s.store.FindVolunteerByEmail(ctx, volunteer.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrVolunteerExists
	}
	if err := s.store.CreateVolunteer(ctx, volunteer); err != nil {
		return err
	}

	if s.mailer != nil && volunteer.Email != "" {
		subject := "Welcome to the volunteer team"
		body := fmt.Sprintf("Dear %s,<br>Thank you for signing up as a volunteer.", volunteer.Name)
		if err := s.mailer.Send(volunteer.Email, subject, body); err != nil {
			log.Println("Failed to send volunteer welcome mail:", err)
		}
	}
	return nil
}

func (s *ContentService) ListVolunteers(ctx context.Context) ([]Volunteer, error) {
	return s.store.ListVolunteers(ctx)
}

func (s *ContentService) AddNews(ctx context.Context, news *News) error {
	if news.Date.IsZero() {
		news.Date = time.Now()
	}
	return s.store.CreateNews(ctx, news)
}

func (s *ContentService) ListNews(ctx context.Context) ([]News, error) {
	return s.store.ListNews(ctx)
}
