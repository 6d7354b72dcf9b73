package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	FullName     string    `gorm:"column:full_name;size:255" json:"full_name"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserRole maps a user to the admin capability. One row per user, created
// lazily on first sign-in; absence of a row reads as the default "user".
type UserRole struct {
	ID        string    `gorm:"primaryKey;size:36;column:id" json:"id"`
	UserID    string    `gorm:"column:user_id;uniqueIndex;size:36;not null" json:"user_id"`
	Role      string    `gorm:"type:enum('admin','user');default:'user';column:role" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserRole) TableName() string { return "user_roles" }

func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
