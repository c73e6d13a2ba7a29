package model

type User struct {
	ID    string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name  string `gorm:"column:name;type:text;not null" json:"name"`
	Email string `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
}

// "user" is a reserved word in PostgreSQL
func (User) TableName() string {
	return "app_user"
}
