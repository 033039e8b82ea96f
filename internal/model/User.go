package model

type User struct {
	BaseModel
	Email     string `gorm:"unique;not null;type:text" json:"email" form:"email" binding:"required,email"`
	FirstName string `gorm:"type:varchar(30);not null;" json:"firstName" form:"firstName" binding:"required"`
	LastName  string `gorm:"type:varchar(30);not null;" json:"lastName" form:"lastName" binding:"required"`
	// Bcrypt hash. Empty for accounts created through Google OAuth.
	PasswordHash string `gorm:"type:text;default:null" json:"-" form:"-"`
	ProfileURL   string `gorm:"type:text;default:null" json:"profileURL" form:"profileURL"`
}

func (u User) TableName() string {
	return "users"
}
