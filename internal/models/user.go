package models

type User struct {
	Base         `bson:",inline"`
	FullName     string `gorm:"type:varchar(255);not null" bson:"full_name" json:"fullName"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" bson:"email" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" bson:"password_hash" json:"-"`
}

func (User) TableName() string { return "users" }
