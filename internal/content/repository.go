package content

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContentRepository handles DB operations for the ancillary collections.
type ContentRepository struct {
	testimonialsCollection *mongo.Collection
	reviewsCollection      *mongo.Collection
	volunteersCollection   *mongo.Collection
	newsCollection         *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		testimonialsCollection: db.Collection("testimonials"),
		reviewsCollection:      db.Collection("reviews"),
		volunteersCollection:   db.Collection("volunteers"),
		newsCollection:         db.Collection("news"),
	}
}

func (r *ContentRepository) CreateTestimonial(ctx context.Context, testimonial *Testimonial) error {
	_, err := r.testimonialsCollection.InsertOne(ctx, testimonial)
	return err
}

func (r *ContentRepository) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	cursor, err := r.testimonialsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	testimonials := []Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *ContentRepository) CreateReview(ctx context.Context, review *Review) error {
	_, err := r.reviewsCollection.InsertOne(ctx, review)
	return err
}

func (r *ContentRepository) ListReviews(ctx context.Context) ([]Review, error) {
	cursor, err := r.reviewsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	reviews := []Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ContentRepository) FindVolunteerByEmail(ctx context.Context, email string) (*Volunteer, error) {
	var volunteer Volunteer
	err := r.volunteersCollection.FindOne(ctx, bson.M{"email": email}).Decode(&volunteer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &volunteer, nil
}

func (r *ContentRepository) CreateVolunteer(ctx context.Context, volunteer *Volunteer) error {
	_, err := r.volunteersCollection.InsertOne(ctx, volunteer)
	return err
}

func (r *ContentRepository) ListVolunteers(ctx context.Context) ([]Volunteer, error) {
	cursor, err := r.volunteersCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	volunteers := []Volunteer{}
	if err := cursor.All(ctx, &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (r *ContentRepository) CreateNews(ctx context.Context, news *News) error {
	_, err := r.newsCollection.InsertOne(ctx, news)
	return err
}

func (r *ContentRepository) ListNews(ctx context.Context) ([]News, error) {
	cursor, err := r.newsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	news := []News{}
	if err := cursor.All(ctx, &news); err != nil {
		return nil, err
	}
	return news, nil
}
