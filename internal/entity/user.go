package entity

type User struct {
	Base
	Name           string
	Email          string `gorm:"unique"`
	HashedPassword string
}
