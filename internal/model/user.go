package model

const (
	DefaultUsername = "example username"
	DefaultPassword = "example password"
	DefaultEmail    = "example@example.com"
)

// User owns its keyboards; deleting a user deletes them.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"not null" json:"username"`
	Password  string     `gorm:"not null" json:"password"`
	Email     string     `gorm:"not null" json:"email"`
	Keyboards []Keyboard `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"keyboards"`
}

func (User) TableName() string {
	return "user"
}

// UserFields carries the optional inputs of NewUser. Nil means "use the default".
type UserFields struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

// UserView is the wire form of a User. The password is included as stored.
type UserView struct {
	ID        uint           `json:"id"`
	Username  string         `json:"username"`
	Password  string         `json:"password"`
	Email     string         `json:"email"`
	Keyboards []KeyboardView `json:"keyboards"`
}

func NewUser(fields UserFields) *User {
	return &User{
		Username: valueOr(fields.Username, DefaultUsername),
		Password: valueOr(fields.Password, DefaultPassword),
		Email:    valueOr(fields.Email, DefaultEmail),
	}
}

func (u *User) Serialize() UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Email:     u.Email,
		Keyboards: SerializeKeyboards(u.Keyboards),
	}
}

func valueOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
