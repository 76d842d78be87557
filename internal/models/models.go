package models

import (
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleNormal Role = "normal"
)

// Valid reports whether r is one of the accepted roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleNormal
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	Role         Role      `gorm:"column:rol;size:20;not null;default:'normal'" json:"rol"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
}

type Hamster struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Breed       string  `gorm:"size:100;not null" json:"breed"`
	Age         int     `gorm:"not null" json:"age"`
	Weight      float64 `gorm:"type:decimal(6,2);not null" json:"weight"`
	HealthNotes *string `gorm:"type:text" json:"health_notes"`
	DeviceID    *uint   `gorm:"index" json:"device_id"`
}

type Device struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Type  string `gorm:"size:50" json:"type"`
	Model string `gorm:"size:100" json:"model"`
}

// SensorReading is append-only. DeviceID is not checked against devices.
type SensorReading struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DeviceID    uint      `gorm:"not null;index" json:"device_id"`
	Temperature float64   `gorm:"type:decimal(5,2);not null" json:"temperature"`
	Humidity    float64   `gorm:"type:decimal(5,2);not null" json:"humidity"`
	Timestamp   time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

// All returns every model for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Hamster{},
		&Device{},
		&SensorReading{},
	}
}
