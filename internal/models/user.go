package models

type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null"`
	Password string `json:"-" gorm:"not null"`
}

type InsertUser struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (in InsertUser) ToUser(id int64) User {
	return User{
		ID:       id,
		Username: in.Username,
		Password: in.Password,
	}
}
