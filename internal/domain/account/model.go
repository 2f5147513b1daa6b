package account

import "time"

// Roles resolved at login, in lookup order.
const (
	RoleUser   = "user"
	RoleDoctor = "doctor"
	RoleAdmin  = "admin"
)

// User is a patient account created through registration.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Admin is a back-office account. Admins are provisioned out-of-band; the
// only operation touching them is the login lookup.
type Admin struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// DoctorCredential is the slice of a doctor row the login flow needs.
type DoctorCredential struct {
	ID           int64
	PasswordHash string
}

// LoginResult is what a successful credential check yields.
type LoginResult struct {
	UserID int64
	Role   string
	Token  string
}
