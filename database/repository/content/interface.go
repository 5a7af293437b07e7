package contentRepo

import (
	"context"

	"koon/models"
)

// ContentRepository covers the uniform admin collections: suggestions,
// question reports, testimonials, subscribers, material donations, site
// updates and service requests.
type ContentRepository interface {
	// Q&A suggestions.
	CreateSuggestion(ctx context.Context, s models.Suggestion) (string, error)
	GetAllSuggestions(ctx context.Context) ([]models.Suggestion, error)
	UpdateSuggestion(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteSuggestion(ctx context.Context, id string) error

	// Question reports.
	CreateReport(ctx context.Context, r models.QuestionReport) (string, error)
	GetAllReports(ctx context.Context) ([]models.QuestionReport, error)
	UpdateReport(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteReport(ctx context.Context, id string) error

	// Testimonials.
	CreateTestimonial(ctx context.Context, t models.Testimonial) (string, error)
	GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error)
	GetTestimonialsByStatus(ctx context.Context, status string) ([]models.Testimonial, error)
	UpdateTestimonialStatus(ctx context.Context, id, status string) error
	DeleteTestimonial(ctx context.Context, id string) error

	// Subscribers.
	CreateSubscriber(ctx context.Context, s models.Subscriber) (string, error)
	GetAllSubscribers(ctx context.Context) ([]models.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id string) error

	// Material donations.
	CreateDonation(ctx context.Context, d models.MaterialDonation) (string, error)
	GetAllDonations(ctx context.Context) ([]models.MaterialDonation, error)
	UpdateDonation(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteDonation(ctx context.Context, id string) error

	// Site updates.
	CreateUpdate(ctx context.Context, u models.SiteUpdate) (string, error)
	GetAllUpdates(ctx context.Context) ([]models.SiteUpdate, error)
	UpdateUpdate(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteUpdate(ctx context.Context, id string) error

	// Service requests.
	CreateRequest(ctx context.Context, r models.ServiceRequest) (string, error)
	GetAllRequests(ctx context.Context) ([]models.ServiceRequest, error)
	UpdateRequest(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteRequest(ctx context.Context, id string) error

	// Dashboard counts.
	CountByFilter(ctx context.Context, collection string, filter map[string]interface{}) (int64, error)
}
