package user

import (
	"context"
	"errors"
	"strings"

	"guesthouse/internal/domain"
	"guesthouse/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type tokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	repos  repository.Repos
	uow    repository.UnitOfWork
	tokens tokenIssuer
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(repos repository.Repos, uow repository.UnitOfWork, tokens tokenIssuer) *Service {
	return &Service{repos: repos, uow: uow, tokens: tokens}
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	loginID := strings.TrimSpace(req.LoginID)
	role := domain.Role(req.Role)

	if username == "" || loginID == "" || req.Password == "" || !role.Valid() {
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:    username,
		LoginID:     loginID,
		Password:    string(hash),
		Role:        role,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	}

	err = s.uow.Within(ctx, func(r repository.Repos) error {
		taken, err := r.Users.ExistsByLoginID(ctx, loginID)
		if err != nil {
			return err
		}
		if taken {
			return ErrLoginIDTaken
		}
		return r.Users.Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Login(ctx context.Context, loginID, password string) (*LoginResult, error) {
	u, err := s.repos.Users.GetByLoginID(ctx, strings.TrimSpace(loginID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: u, Token: token}, nil
}

func (s *Service) IsLoginIDAvailable(ctx context.Context, loginID string) (bool, error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" {
		return false, ErrValidation
	}

	taken, err := s.repos.Users.ExistsByLoginID(ctx, loginID)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repos.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateInfo patches the caller's own profile. At least one field must be set.
func (s *Service) UpdateInfo(ctx context.Context, userID int64, req UpdateUserRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	phone := strings.TrimSpace(req.PhoneNumber)

	if username == "" && phone == "" && req.Password == "" {
		return nil, ErrValidation
	}

	var updated *domain.User
	err := s.uow.Within(ctx, func(r repository.Repos) error {
		u, err := r.Users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if username != "" {
			u.Username = username
		}
		if phone != "" {
			u.PhoneNumber = phone
		}
		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			u.Password = string(hash)
		}

		if err := r.Users.Update(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
