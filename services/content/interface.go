package content

import (
	"context"

	contentRepo "koon/database/repository/content"
	"koon/models"
	"koon/services/notify"
)

// ContentService carries the admin dashboard's content surfaces.
type ContentService interface {
	// Q&A suggestions.
	SubmitSuggestion(ctx context.Context, s models.Suggestion) (string, error)
	GetAllSuggestions(ctx context.Context) ([]models.Suggestion, error)
	ReplyToSuggestion(ctx context.Context, id, replyText string) error
	SetSuggestionPublic(ctx context.Context, id string, public bool) error
	DeleteSuggestion(ctx context.Context, id string) error

	// Question reports.
	SubmitReport(ctx context.Context, r models.QuestionReport) (string, error)
	GetAllReports(ctx context.Context) ([]models.QuestionReport, error)
	ResolveReport(ctx context.Context, id string) error
	DeleteReport(ctx context.Context, id string) error

	// Testimonials.
	SubmitTestimonial(ctx context.Context, t models.Testimonial) (string, error)
	GetAllTestimonials(ctx context.Context) ([]models.Testimonial, error)
	GetApprovedTestimonials(ctx context.Context) ([]models.Testimonial, error)
	SetTestimonialStatus(ctx context.Context, id, status string) error
	DeleteTestimonial(ctx context.Context, id string) error

	// Subscribers.
	Subscribe(ctx context.Context, email string) (string, error)
	GetAllSubscribers(ctx context.Context) ([]models.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id string) error

	// Material donations.
	SubmitDonation(ctx context.Context, d models.MaterialDonation) (string, error)
	GetAllDonations(ctx context.Context) ([]models.MaterialDonation, error)
	SetDonationStatus(ctx context.Context, id, status string) error
	AttachDonationPhoto(ctx context.Context, id, photoID string) error
	DeleteDonation(ctx context.Context, id string) error

	// Site updates.
	CreateUpdate(ctx context.Context, u models.SiteUpdate) (string, error)
	GetAllUpdates(ctx context.Context) ([]models.SiteUpdate, error)
	EditUpdate(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteUpdate(ctx context.Context, id string) error

	// Service requests.
	SubmitRequest(ctx context.Context, r models.ServiceRequest) (string, error)
	GetAllRequests(ctx context.Context) ([]models.ServiceRequest, error)
	SetRequestStatus(ctx context.Context, id, status string) error
	DeleteRequest(ctx context.Context, id string) error

	// Dashboard.
	GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Repo contentRepo.ContentRepository
	// Notifier broadcasts new announcements to subscribers. Nil disables push.
	Notifier notify.NotificationService
}
