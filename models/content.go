// File: koon/models/content.go
package models

import "time"

// Suggestion is a visitor Q&A suggestion or complaint.
type Suggestion struct {
	ID        string    `bson:"id" json:"id"`
	Text      string    `bson:"text" json:"text"`
	Author    string    `bson:"author,omitempty" json:"author,omitempty"`
	Status    string    `bson:"status" json:"status"` // "new" or "replied"
	Reply     string    `bson:"reply,omitempty" json:"reply,omitempty"`
	ReplyDate time.Time `bson:"replyDate,omitempty" json:"replyDate,omitempty"`
	Public    bool      `bson:"public" json:"public"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// QuestionReport flags a broken or incorrect question on the student site.
type QuestionReport struct {
	ID         string    `bson:"id" json:"id"`
	QuestionID string    `bson:"questionId" json:"questionId"`
	Reason     string    `bson:"reason" json:"reason"`
	Details    string    `bson:"details,omitempty" json:"details,omitempty"`
	Resolved   bool      `bson:"resolved" json:"resolved"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// Testimonial statuses.
const (
	TestimonialPending  = "pending"
	TestimonialApproved = "approved"
	TestimonialRejected = "rejected"
)

type Testimonial struct {
	ID          string    `bson:"id" json:"id"`
	Author      string    `bson:"author" json:"author"`
	Role        string    `bson:"role,omitempty" json:"role,omitempty"`
	Major       string    `bson:"major,omitempty" json:"major,omitempty"`
	Quote       string    `bson:"quote" json:"quote"`
	Status      string    `bson:"status" json:"status"`
	AvatarColor string    `bson:"avatarColor" json:"avatarColor"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type Subscriber struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// MaterialDonation is study material offered by a student.
type MaterialDonation struct {
	ID        string    `bson:"id" json:"id"`
	Donor     string    `bson:"donor" json:"donor"`
	Contact   string    `bson:"contact" json:"contact"`
	Material  string    `bson:"material" json:"material"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	PhotoID   string    `bson:"photoId,omitempty" json:"photoId,omitempty"`
	Status    string    `bson:"status" json:"status"` // "new", "collected", "declined"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// SiteUpdate is a site-wide announcement shown on the student site.
type SiteUpdate struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	Pinned    bool      `bson:"pinned" json:"pinned"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceRequest is a student request for one of the site's services.
type ServiceRequest struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Contact   string    `bson:"contact" json:"contact"`
	Service   string    `bson:"service" json:"service"`
	Details   string    `bson:"details,omitempty" json:"details,omitempty"`
	Status    string    `bson:"status" json:"status"` // "open", "in_progress", "done"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// DashboardSummary backs the dashboard stat cards.
type DashboardSummary struct {
	NewSuggestions      int64 `json:"newSuggestions"`
	OpenReports         int64 `json:"openReports"`
	PendingTestimonials int64 `json:"pendingTestimonials"`
	Subscribers         int64 `json:"subscribers"`
	Donations           int64 `json:"donations"`
	OpenRequests        int64 `json:"openRequests"`
	Updates             int64 `json:"updates"`
}
