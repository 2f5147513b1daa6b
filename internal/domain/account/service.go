package account

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinicore/clinicore/internal/platform/token"
)

var (
	ErrMissingFields      = errors.New("Missing required fields")
	ErrMissingCredentials = errors.New("Missing username or password")
	ErrUsernameTaken      = errors.New("Username already exists")
	ErrEmailTaken         = errors.New("Email already exists")
	ErrInvalidCredentials = errors.New("Invalid username or password")
)

// TxFunc runs fn atomically; production wiring is db.RunInTx over the pgx pool.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	users   UserRepository
	admins  AdminRepository
	doctors DoctorDirectory
	tokens  *token.Issuer
	tx      TxFunc
}

func NewService(users UserRepository, admins AdminRepository, doctors DoctorDirectory, tokens *token.Issuer, tx TxFunc) *Service {
	return &Service{users: users, admins: admins, doctors: doctors, tokens: tokens, tx: tx}
}

// Register creates a patient account with a bcrypt-hashed password and
// returns its id. The duplicate checks and the insert run in one
// transaction; the unique constraints on the table close the remaining
// check-then-insert race.
func (s *Service) Register(ctx context.Context, username, email, password string) (int64, error) {
	if username == "" || email == "" || password == "" {
		return 0, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	u := &User{Username: username, Email: email, PasswordHash: string(hash)}
	err = s.tx(ctx, func(ctx context.Context) error {
		taken, err := s.users.UsernameExists(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameTaken
		}
		taken, err = s.users.EmailExists(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
		return s.users.Create(ctx, u)
	})
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Login resolves credentials against the role stores in a fixed order —
// users by username, doctors by email, admins by username — and returns the
// first match. The order matters: an identifier shared across tables
// resolves to the earliest store.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u != nil && passwordMatches(u.PasswordHash, password) {
		return s.result(u.ID, RoleUser)
	}

	d, err := s.doctors.CredentialByEmail(ctx, username)
	if err != nil {
		return nil, err
	}
	if d != nil && passwordMatches(d.PasswordHash, password) {
		return s.result(d.ID, RoleDoctor)
	}

	a, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if a != nil && passwordMatches(a.PasswordHash, password) {
		return s.result(a.ID, RoleAdmin)
	}

	return nil, ErrInvalidCredentials
}

func (s *Service) result(id int64, role string) (*LoginResult, error) {
	tok, err := s.tokens.Issue(id, role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: id, Role: role, Token: tok}, nil
}

func passwordMatches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
