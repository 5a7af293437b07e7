package handlers

import "koon/services/pairing"

// HandlerBundle groups every handler the router needs, assembled once in main.
type HandlerBundle struct {
	Gate pairing.DeviceGate

	Auth         *AuthHandler
	Pairing      *PairingHandler
	Qna          *QnaHandler
	Testimonials *TestimonialHandler
	Subscribers  *SubscriberHandler
	Donations    *DonationHandler
	Updates      *UpdateHandler
	Requests     *RequestHandler
	Analytics    *AnalyticsHandler
	Dashboard    *DashboardHandler
}
