package user

import "time"

// User is the profile cached locally after login. The backend owns the
// record; the client only ever replaces it wholesale after a round trip.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Avatar    string    `json:"avatar,omitempty"` // base64 data URL, optional
	CreatedAt time.Time `json:"created_at"`
}
