package domain

import "time"

type User struct {
	ID        uint
	Name      string
	Email     string
	Password  string // bcrypt hash
	Role      Role
	CreatedAt time.Time
}
