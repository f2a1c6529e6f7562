package domain

// User is an admin account for the moderation dashboard. Regular reporters
// authenticate by phone number only and never get a row here.
type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"`
}

// Reporter is the current phone-login identity, passed explicitly into
// record-creation calls.
type Reporter struct {
	ID    string `db:"id"`
	Phone string `db:"phone"`
}
