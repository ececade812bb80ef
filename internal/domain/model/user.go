package model

import "time"

// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName  string    `gorm:"column:full_name;type:varchar(255)" json:"full_name"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `gorm:"not null;<-:create;autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

func NewUser(email, fullName, passwordHash string, now time.Time) User {
	return User{
		Email:     email,
		FullName:  fullName,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *User) Touch(now time.Time) {
	u.UpdatedAt = later(u.UpdatedAt, now)
}
