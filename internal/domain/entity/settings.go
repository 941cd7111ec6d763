package entity

import "time"

const (
	ProfileVisibilityPublic   = "public"
	ProfileVisibilityContacts = "contacts"
	ProfileVisibilityPrivate  = "private"
)

type UserSettings struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"user_id" firestore:"userId"`

	PushNotifications        bool `json:"push_notifications" firestore:"pushNotifications"`
	EmailNotifications       bool `json:"email_notifications" firestore:"emailNotifications"`
	MessageNotifications     bool `json:"message_notifications" firestore:"messageNotifications"`
	ApplicationNotifications bool `json:"application_notifications" firestore:"applicationNotifications"`
	PaymentNotifications     bool `json:"payment_notifications" firestore:"paymentNotifications"`

	ProfileVisibility string   `json:"profile_visibility" firestore:"profileVisibility"` // "public", "contacts", "private"
	ShowContact       bool     `json:"show_contact" firestore:"showContact"`
	ShowLocation      bool     `json:"show_location" firestore:"showLocation"`
	ShowEarnings      bool     `json:"show_earnings" firestore:"showEarnings"`
	ShowPortfolio     bool     `json:"show_portfolio" firestore:"showPortfolio"`
	VisibleCategories []string `json:"visible_categories,omitempty" firestore:"visibleCategories,omitempty"`

	Language string `json:"language" firestore:"language"`
	Theme    string `json:"theme" firestore:"theme"`
	Currency string `json:"currency" firestore:"currency"`
	Timezone string `json:"timezone" firestore:"timezone"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// DefaultSettings returns the settings document created for a new user.
func DefaultSettings(userID string) *UserSettings {
	now := time.Now()
	return &UserSettings{
		ID:                       userID,
		UserID:                   userID,
		PushNotifications:        true,
		EmailNotifications:       true,
		MessageNotifications:     true,
		ApplicationNotifications: true,
		PaymentNotifications:     true,
		ProfileVisibility:        ProfileVisibilityPublic,
		ShowContact:              true,
		ShowLocation:             true,
		ShowEarnings:             false,
		ShowPortfolio:            true,
		Language:                 "tr",
		Theme:                    "light",
		Currency:                 "TRY",
		Timezone:                 "Europe/Istanbul",
		CreatedAt:                now,
		UpdatedAt:                now,
	}
}
