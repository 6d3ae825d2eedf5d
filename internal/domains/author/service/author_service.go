package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"adboard-backend/internal/domains/author"
	"adboard-backend/internal/domains/suitablead"
	"adboard-backend/pkg/jwt"
)

// authorService implements author.Service
type authorService struct {
	repo           author.Repository
	suitableAdRepo suitablead.Repository
	jwtManager     *jwt.Manager
}

// NewAuthorService creates the service instance.
// Dependencies are injected through the constructor.
func NewAuthorService(repo author.Repository, suitableAdRepo suitablead.Repository, jwtManager *jwt.Manager) author.Service {
	return &authorService{
		repo:           repo,
		suitableAdRepo: suitableAdRepo,
		jwtManager:     jwtManager,
	}
}

// Register creates a new author account with hashed credentials
func (s *authorService) Register(ctx context.Context, req author.RegisterRequest) (*author.AuthorDTO, error) {
	// Validation already ran in the handler, but double-check here so
	// the service stays safe when called from jobs or other services.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check name exists: %w", err)
	}
	if exists {
		return nil, author.ErrDuplicateName
	}

	// bcrypt cost 12: balance between security and login latency
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newAuthor := &author.Author{
		Name:         req.Name,
		PasswordHash: string(passwordHash),
		Role:         author.RoleUser,
	}
	for _, e := range req.Emails {
		newAuthor.Emails = append(newAuthor.Emails, author.Email{Email: e})
	}
	for _, p := range req.Phones {
		newAuthor.Phones = append(newAuthor.Phones, author.Phone{Number: p})
	}
	for _, a := range req.Addresses {
		newAuthor.Addresses = append(newAuthor.Addresses, author.Address{City: a.City, Street: a.Street})
	}

	if err := s.repo.Create(ctx, newAuthor); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	dto := newAuthor.ToDTO()
	return &dto, nil
}

// Authenticate verifies credentials and returns a JWT pair
func (s *authorService) Authenticate(ctx context.Context, req author.LoginRequest) (*author.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByName(ctx, req.Name)
	if err != nil {
		// Do not reveal whether the name exists
		return nil, author.ErrInvalidCredentials
	}

	// Constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, author.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(a.ID.String(), a.Name, a.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(a.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &author.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.jwtManager.AccessExpiry()),
		Author:       a.ToDTO(),
	}, nil
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*author.AuthorDTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := a.ToDTO()
	return &dto, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req author.UpdateRequest) (*author.AuthorDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity := &author.Author{
		ID:   id,
		Name: req.Name,
	}
	for _, e := range req.Emails {
		entity.Emails = append(entity.Emails, author.Email{Email: e})
	}
	for _, p := range req.Phones {
		entity.Phones = append(entity.Phones, author.Phone{Number: p})
	}
	for _, a := range req.Addresses {
		entity.Addresses = append(entity.Addresses, author.Address{City: a.City, Street: a.Street})
	}

	updated, err := s.repo.Update(ctx, entity, req.Version)
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

// List returns all authors for the administrative overview.
func (s *authorService) List(ctx context.Context) ([]author.AuthorDTO, error) {
	authors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}

	dtos := make([]author.AuthorDTO, 0, len(authors))
	for _, a := range authors {
		dtos = append(dtos, a.ToDTO())
	}
	return dtos, nil
}

// Delete removes the author and everything they own. Suitable ads
// live in their own repository, so they go first; the author
// repository then cascades through announcements, role and contacts.
func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.suitableAdRepo.DeleteByAuthor(ctx, id); err != nil {
		return fmt.Errorf("delete suitable ads by author: %w", err)
	}

	return s.repo.Delete(ctx, id)
}

func (s *authorService) DeleteAnnouncementsByAuthor(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.repo.DeleteAnnouncementsByAuthor(ctx, id)
}
