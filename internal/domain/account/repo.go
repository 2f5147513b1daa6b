package account

import "context"

// UserRepository persists patient accounts. Lookups return (nil, nil) when no
// row matches so the login flow can fall through to the next role store.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AdminRepository resolves admin accounts for login. GetByUsername returns
// (nil, nil) when no row matches.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
}

// DoctorDirectory resolves doctor credentials by email for the login flow.
// Implemented by an adapter over the doctor repository so the two domains
// stay decoupled. CredentialByEmail returns (nil, nil) when no row matches.
type DoctorDirectory interface {
	CredentialByEmail(ctx context.Context, email string) (*DoctorCredential, error)
}
