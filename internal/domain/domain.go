package domain

import (
	"time"
)

type User struct {
	ID        uint       `gorm:"primaryKey"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`

	Email        string     `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null"`
	FirstName    string     `gorm:"column:first_name;type:varchar(100);not null"`
	LastName     string     `gorm:"column:last_name;type:varchar(100);not null"`
	DateOfBirth  *time.Time `gorm:"column:date_of_birth"`
	HeightCM     float64    `gorm:"column:height_cm"`

	// Per-user targets, denominators for progress and score calculations.
	// A zero target means "not set" and contributes 0% rather than erroring.
	TargetWeight      float64 `gorm:"column:target_weight"`       // kg
	TargetSteps       int     `gorm:"column:target_steps"`        // steps/day
	TargetWaterIntake float64 `gorm:"column:target_water_intake"` // liters/day
	TargetSleep       float64 `gorm:"column:target_sleep"`        // hours/night

	IsActive          bool       `gorm:"column:is_active;default:true;index"`
	FailedLoginCount  int        `gorm:"column:failed_login_count;default:0"`
	LockedUntil       *time.Time `gorm:"column:locked_until"`
	LastLoginAt       *time.Time `gorm:"column:last_login_at"`
	PasswordChangedAt time.Time  `gorm:"column:password_changed_at"`
}

func (User) TableName() string {
	return "users"
}

// IsLocked returns true if the account is temporarily locked due to failed logins.
func (u *User) IsLocked() bool {
	return u.LockedUntil != nil && time.Now().Before(*u.LockedUntil)
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type AuditAction string

const (
	ActionCreate AuditAction = "create"
	ActionRead   AuditAction = "read"
	ActionUpdate AuditAction = "update"
	ActionDelete AuditAction = "delete"
	ActionLogin  AuditAction = "login"
	ActionLogout AuditAction = "logout"
)

type AuditLog struct {
	ID         uint      `gorm:"primaryKey"`
	OccurredAt time.Time `gorm:"autoCreateTime;index"`

	// Who
	UserID    uint   `gorm:"column:user_id;not null;index"`
	IPAddress string `gorm:"column:ip_address;type:varchar(45)"` // Supports IPv6

	// What
	Action       AuditAction `gorm:"column:action;type:varchar(20);not null;index"`
	ResourceType string      `gorm:"column:resource_type;type:varchar(50);not null;index"`
	ResourceID   string      `gorm:"column:resource_id;type:varchar(50);index"`

	RequestID  string `gorm:"column:request_id;type:varchar(50);index"`
	UserAgent  string `gorm:"column:user_agent;type:text"`
	StatusCode int    `gorm:"column:status_code"`

	Changes string `gorm:"column:changes;type:jsonb"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"` // Always "Bearer"
}

type Claims struct {
	UserID uint   `json:"sub"`
	Email  string `json:"email"`
}
