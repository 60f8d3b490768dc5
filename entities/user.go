package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	IsVerified bool      `json:"is_verified"`

	Timestamp
}

// PendingVerification blocks login until the one-time code is confirmed.
// One row per user; deleted on successful verification.
type PendingVerification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `gorm:"type:timestamp" json:"expires_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type UserPreference struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	SkillLevel string    `json:"skill_level,omitempty"`
	Servings   int       `json:"servings,omitempty"`

	Restrictions []*DietaryRestriction `gorm:"many2many:user_preference_restrictions" json:"restrictions,omitempty"`
	User         *User                 `gorm:"foreignKey:UserID"`
	Timestamp
}
