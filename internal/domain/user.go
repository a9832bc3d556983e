package domain

type User struct {
	ID    string `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
	Name  string `db:"name" json:"name"`
	Phone string `db:"phone" json:"phone,omitempty"`
	Hash  string `db:"password_hash" json:"-"`
}

// Session is the authenticated identity plus its token pair. It is what
// gets persisted to durable client storage and restored across restarts.
type Session struct {
	User         User   `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
