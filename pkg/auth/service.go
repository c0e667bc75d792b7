package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kabsdesign/studio/pkg/apperr"
)

// minPasswordLength is enforced at registration
const minPasswordLength = 6

// Service implements registration and login over PostgreSQL
type Service struct {
	db         *sql.DB
	tokens     *TokenService
	bcryptCost int
	logger     *logrus.Logger
}

// NewService creates the auth service
func NewService(db *sql.DB, tokens *TokenService, bcryptCost int, logger *logrus.Logger) *Service {
	return &Service{
		db:         db,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a company and its first admin user in one transaction
// and returns a signed token for the new user.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)

	taken, err := s.emailTaken(ctx, email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if taken {
		return nil, apperr.Validation("User with this email already exists")
	}

	passwordHash, err := HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("beginning registration tx: %w", err))
	}
	defer tx.Rollback()

	company, err := s.insertCompany(ctx, tx, req.CompanyName)
	if err != nil {
		return nil, err
	}

	user := &User{
		CompanyID: company.ID,
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      RoleAdmin,
		Status:    UserStatusActive,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (company_id, email, password_hash, first_name, last_name, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		user.CompanyID, user.Email, passwordHash, user.FirstName, user.LastName, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if apperr.IsDuplicateKey(err) {
			return nil, apperr.Validation("User with this email already exists")
		}
		return nil, apperr.Internal(fmt.Errorf("inserting user: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, apperr.Internal(fmt.Errorf("committing registration: %w", err))
	}

	token, err := s.tokens.Issue(user.ID, company.ID, user.Role)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.logger.WithFields(logrus.Fields{
		"company_id": company.ID,
		"user_id":    user.ID,
		"slug":       company.Slug,
	}).Info("company registered")

	return &AuthResponse{Token: token, User: user, Company: company}, nil
}

// insertCompany resolves a unique slug and inserts the company. A slug
// probe can race a concurrent registration, so a duplicate-key failure is
// retried exactly once with a freshly resolved slug; a second collision
// propagates.
func (s *Service) insertCompany(ctx context.Context, tx *sql.Tx, name string) (*Company, error) {
	company := &Company{Name: strings.TrimSpace(name)}

	for attempt := 0; attempt < 2; attempt++ {
		slug, err := ResolveUniqueSlug(ctx, tx, company.Name)
		if err != nil {
			return nil, apperr.Internal(err)
		}

		err = tx.QueryRowContext(ctx,
			`INSERT INTO companies (name, slug)
			 VALUES ($1, $2)
			 RETURNING id, created_at, updated_at`,
			company.Name, slug,
		).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
		if err == nil {
			company.Slug = slug
			return company, nil
		}
		if !apperr.IsDuplicateKey(err) || attempt == 1 {
			return nil, apperr.Internal(fmt.Errorf("inserting company: %w", err))
		}

		s.logger.WithField("slug", slug).Warn("company slug collided, retrying with fresh slug")
	}
	// Unreachable; the loop returns on success or final failure.
	return nil, apperr.Internal(errors.New("company insert retries exhausted"))
}

// Login verifies credentials and returns a fresh token. Suspended
// accounts are filtered out at the query, and all failures read as the
// same generic 401 so valid emails cannot be enumerated.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("Email and password are required")
	}
	email := normalizeEmail(req.Email)

	user := &User{}
	company := &Company{}
	err := s.db.QueryRowContext(ctx,
		`SELECT u.id, u.company_id, u.email, u.password_hash,
		        u.first_name, u.last_name, u.role, u.status,
		        u.created_at, u.updated_at,
		        c.id, c.name, c.slug, c.created_at, c.updated_at
		 FROM users u
		 JOIN companies c ON c.id = u.company_id
		 WHERE u.email = $1 AND u.status = 'active'`,
		email,
	).Scan(
		&user.ID, &user.CompanyID, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.Role, &user.Status,
		&user.CreatedAt, &user.UpdatedAt,
		&company.ID, &company.Name, &company.Slug,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, apperr.Internal(fmt.Errorf("looking up user: %w", err))
	}

	if !VerifyPassword(user.PasswordHash, req.Password) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, user.CompanyID, user.Role)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &AuthResponse{Token: token, User: user, Company: company}, nil
}

func (s *Service) emailTaken(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking email availability: %w", err)
	}
	return exists, nil
}

func validateRegistration(req *RegisterRequest) error {
	switch {
	case strings.TrimSpace(req.CompanyName) == "":
		return apperr.Validation("Company name is required")
	case strings.TrimSpace(req.Email) == "":
		return apperr.Validation("Email is required")
	case !strings.Contains(req.Email, "@"):
		return apperr.Validation("Invalid email address")
	case len(req.Password) < minPasswordLength:
		return apperr.Validation("Password must be at least 6 characters")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
