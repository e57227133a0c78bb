package domain

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID    string
	Type  UserType
	Name  string
	Phone string
	Email string

	CreatedAt time.Time
}

// Validate checks that the user has a name and a recognised type.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("user name is required")
	}
	if !ValidUserTypes[string(u.Type)] {
		return fmt.Errorf("user type %q must be one of Owner, Admin, User, Client", u.Type)
	}
	return nil
}
