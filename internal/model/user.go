package model

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:64;not null;uniqueIndex" json:"name"`
	Email       string    `gorm:"size:128;not null;uniqueIndex" json:"email"`
	AccessToken *string   `gorm:"size:1000" json:"accessToken,omitempty"`
	Posts       []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Comments    []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublicUser is the listing view of a User. The access token only ever
// appears in the sign-up response, so listings go through this type.
type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
