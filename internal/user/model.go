package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is a registered customer. The phone number acts as the natural key.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the password-free shape returned to clients.
type Profile struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (u User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Phone: u.Phone, Address: u.Address}
}

type UpdateProfileParams struct {
	Name    string
	Phone   string
	Address string
}
