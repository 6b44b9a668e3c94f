package entity

import "time"

// Preferences is stored as a jsonb document on the users row.
type Preferences struct {
	Keywords  []string `json:"keywords"`
	MaxBudget *float64 `json:"max_budget,omitempty"`
	Regions   []string `json:"regions"`
}

const MaxPreferenceKeywords = 5

// db model
type User struct {
	Id                       int64       `json:"id" db:"id"`
	Name                     string      `json:"name" db:"name"`
	Email                    string      `json:"email" db:"email"`
	Phone                    string      `json:"phone" db:"phone"`
	Company                  string      `json:"company" db:"company"`
	IsActive                 bool        `json:"is_active" db:"is_active"`
	SubscriptionTier         string      `json:"subscription_tier" db:"subscription_tier"`
	IsVerified               bool        `json:"is_verified" db:"is_verified"`
	VerificationToken        string      `json:"-" db:"verification_token"`
	VerificationTokenExpires time.Time   `json:"-" db:"verification_token_expires"`
	Preferences              Preferences `json:"preferences" db:"preferences"`
	CreatedAt                string      `json:"created_at" db:"created_at"`
}

// service input model
type RegisterInput struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	Preferences Preferences
}

// repo input model, token already generated by the service
type CreateUserInput struct {
	Name                     string
	Email                    string
	Phone                    string
	Company                  string
	Preferences              Preferences
	VerificationToken        string
	VerificationTokenExpires time.Time
}

// VerificationEmail is the payload handed to the mail dispatcher after the
// user row has been committed.
type VerificationEmail struct {
	Name  string
	Email string
	Token string
}
