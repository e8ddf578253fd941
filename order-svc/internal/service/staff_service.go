package service

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"qr-dine/order-svc/internal/auth"
	"qr-dine/order-svc/internal/domain"
)

const minPasswordLength = 8

type StaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Staff     domain.Staff `json:"staff"`
	HomeRoute string       `json:"home_route"`
}

type StaffService struct {
	repo   StaffRepository
	tokens TokenIssuer
}

func NewStaffService(repo StaffRepository, tokens TokenIssuer) *StaffService {
	return &StaffService{repo: repo, tokens: tokens}
}

func (s *StaffService) Login(email, password string) (*LoginResult, error) {
	staff, err := s.repo.GetStaffByEmail(strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(staff.PasswordHash, password) {
		log.Info().Int("staff_id", staff.ID).Msg("login rejected")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(*staff)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Staff:     *staff,
		HomeRoute: staff.Role.HomeRoute(),
	}, nil
}

func (s *StaffService) Create(restaurantID int, req StaffRequest) (*domain.Staff, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name", "name is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalid("email", "a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, invalid("password", "must be at least 8 characters")
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, invalid("role", err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	staff := &domain.Staff{
		RestaurantID: restaurantID,
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
	}
	if err := s.repo.CreateStaff(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) List(restaurantID int) ([]domain.Staff, error) {
	return s.repo.ListStaff(restaurantID)
}
