package models

import "time"

// User represents a registered viewer or admin of the catalog.
type User struct {
	ID           string                 `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string                 `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Username     string                 `json:"username" gorm:"type:varchar(100)"`
	Password     string                 `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Role         string                 `json:"role" gorm:"type:varchar(20)"`
	Avatar       string                 `json:"avatar,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	IsActive     bool                   `json:"is_active"`
	Preferences  map[string]interface{} `json:"preferences" gorm:"serializer:json"`
	WatchHistory []string               `json:"watch_history" gorm:"serializer:json"`
	Favorites    []string               `json:"favorites" gorm:"serializer:json"`
}

// UserCreate is the registration request body.
type UserCreate struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserLogin is the login request body.
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}

// Identity is a resolved bearer credential: who is calling and with what role.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ApplyPatch merges a partial update payload into the user. Every supplied
// field of the stored shape is merged, email and role included; keys outside
// the stored shape are dropped. List and map values arrive as decoded JSON
// and are coerced to the field's shape.
func (u *User) ApplyPatch(patch map[string]interface{}) {
	for key, value := range patch {
		switch key {
		case "email":
			if s, ok := value.(string); ok {
				u.Email = s
			}
		case "username":
			if s, ok := value.(string); ok {
				u.Username = s
			}
		case "role":
			if s, ok := value.(string); ok {
				u.Role = s
			}
		case "avatar":
			if s, ok := value.(string); ok {
				u.Avatar = s
			}
		case "is_active":
			if b, ok := value.(bool); ok {
				u.IsActive = b
			}
		case "preferences":
			if m, ok := value.(map[string]interface{}); ok {
				u.Preferences = DecodeTimestamps(m)
			}
		case "watch_history":
			if list, ok := toStringSlice(value); ok {
				u.WatchHistory = list
			}
		case "favorites":
			if list, ok := toStringSlice(value); ok {
				u.Favorites = list
			}
		}
	}
}

func toStringSlice(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
