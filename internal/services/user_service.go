package services

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"poseidon/internal/authz"
	apperrors "poseidon/internal/errors"
	"poseidon/internal/logger"
	"poseidon/internal/metrics"
	"poseidon/internal/models"
	"poseidon/internal/password"
	"poseidon/internal/repository"
	"poseidon/internal/validator"
)

// userService handles user-related business logic.
type userService struct {
	store   repository.UserStore
	encoder password.Encoder
	log     *zap.SugaredLogger
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB, encoder password.Encoder) UserServicer {
	return &userService{
		store:   repository.NewUserStore(db),
		encoder: encoder,
		log:     logger.Named("User"),
	}
}

// public returns a copy of user without the password hash.
func public(user *models.User) *models.User {
	out := *user
	out.Password = ""
	return &out
}

func userNotFound(id int64) error {
	return apperrors.WithMessage(apperrors.ErrNotFound, fmt.Sprintf("Invalid user Id: %d", id))
}

// FindAll returns all users.
func (s *userService) FindAll() ([]models.User, error) {
	users, err := s.store.FindAll()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	out := make([]models.User, 0, len(users))
	for i := range users {
		out = append(out, *public(&users[i]))
	}
	return out, nil
}

// FindByID retrieves a user by id.
func (s *userService) FindByID(id int64) (*models.User, error) {
	if id <= 0 {
		return nil, userNotFound(id)
	}
	user, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, userNotFound(id)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return public(user), nil
}

// check validates the persisted fields and the plaintext password together so
// that the caller sees every violation at once.
func (s *userService) check(user *models.User, rawPassword string, id int64) error {
	errs := append(validator.User(user), validator.Password(rawPassword)...)
	if len(errs) > 0 {
		return apperrors.Validation(errs)
	}

	taken, err := s.store.UsernameTaken(user.Username, id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if taken {
		return apperrors.ErrDuplicateUsername
	}
	return nil
}

// Create registers a new user. rawPassword is hashed before storage.
func (s *userService) Create(user *models.User, rawPassword string) (*models.User, error) {
	if user == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidArgument, "User is required")
	}
	user.Username = strings.TrimSpace(user.Username)
	user.SetID(0)

	if err := s.check(user, rawPassword, 0); err != nil {
		return nil, err
	}

	hash, err := s.encoder.Encode(rawPassword)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.Password = hash

	if err := s.store.Save(user); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("created", "id", user.ID, "username", user.Username)
	metrics.RecordWrite("User", "create")
	return public(user), nil
}

// Update replaces the user stored under id, re-hashing rawPassword.
func (s *userService) Update(id int64, user *models.User, rawPassword string) (*models.User, error) {
	if id <= 0 {
		return nil, invalidID(id)
	}
	if user == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidArgument, "User is required")
	}

	stored, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, userNotFound(id)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user.Username = strings.TrimSpace(user.Username)
	user.SetID(id)
	if err := s.check(user, rawPassword, id); err != nil {
		return nil, err
	}
	if user.Version != stored.Version {
		return nil, apperrors.ErrConcurrencyConflict
	}

	hash, err := s.encoder.Encode(rawPassword)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.Password = hash

	if err := s.store.Save(user); err != nil {
		if errors.Is(err, repository.ErrStaleVersion) {
			return nil, apperrors.ErrConcurrencyConflict
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("updated", "id", id, "username", user.Username)
	metrics.RecordWrite("User", "update")
	return public(user), nil
}

// Delete removes the user stored under id.
func (s *userService) Delete(id int64) error {
	if id <= 0 {
		return invalidID(id)
	}
	user, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return userNotFound(id)
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.store.Delete(user); err != nil {
		if errors.Is(err, repository.ErrNothingDeleted) {
			return userNotFound(id)
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("deleted", "id", id, "username", user.Username)
	metrics.RecordWrite("User", "delete")
	return nil
}

// Authenticate checks username and password. Unknown users and wrong
// passwords yield the same error.
func (s *userService) Authenticate(username, rawPassword string) (*models.User, error) {
	user, err := s.store.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !s.encoder.Matches(user.Password, rawPassword) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return public(user), nil
}

// EnsureAdmin creates the bootstrap administrator when it is missing.
func (s *userService) EnsureAdmin(username, rawPassword, fullname string) (bool, error) {
	_, err := s.store.FindByUsername(username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if fullname == "" {
		fullname = "Administrator"
	}
	admin := &models.User{Username: username, Fullname: fullname, Role: authz.RoleAdmin}
	if _, err := s.Create(admin, rawPassword); err != nil {
		return false, err
	}
	return true, nil
}
