package model

// User represents a registered account.
//
// Password holds a bcrypt hash, never the raw password.
type User struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	Username  string `gorm:"column:username;uniqueIndex"`
	Password  string `gorm:"column:password"`
}

func (User) TableName() string {
	return "users"
}
