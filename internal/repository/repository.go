// Package repository provides a generic GORM-backed store keyed by surrogate id.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"poseidon/internal/models"
	"poseidon/internal/pagination"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrNothingDeleted is returned when a delete matched no row.
	ErrNothingDeleted = errors.New("no record deleted")
	// ErrStaleVersion is returned when an update carried an outdated version.
	ErrStaleVersion = errors.New("stale record version")
)

// Store is the persistence contract for one entity type.
type Store[T any] interface {
	FindAll() ([]T, error)
	FindPage(page pagination.PageRequest) ([]T, int64, error)
	FindByID(id int64) (*T, error)
	ExistsByID(id int64) (bool, error)
	// Save inserts entities without an id and updates the others, checking
	// and bumping their version.
	Save(entity *T) error
	DeleteByID(id int64) error
	Delete(entity *T) error
}

// Record constrains T so that *T exposes id and version accessors.
type Record[T any] interface {
	*T
	models.Record
}

type gormStore[T any, P Record[T]] struct {
	db *gorm.DB
}

// New returns a Store for T backed by db.
func New[T any, P Record[T]](db *gorm.DB) Store[T] {
	return &gormStore[T, P]{db: db}
}

func (s *gormStore[T, P]) FindAll() ([]T, error) {
	var out []T
	if err := s.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormStore[T, P]) FindPage(page pagination.PageRequest) ([]T, int64, error) {
	var total int64
	if err := s.db.Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []T
	if err := s.db.Scopes(pagination.Paginate(page)).Order("id").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *gormStore[T, P]) FindByID(id int64) (*T, error) {
	var entity T
	if err := s.db.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (s *gormStore[T, P]) ExistsByID(id int64) (bool, error) {
	var count int64
	if err := s.db.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormStore[T, P]) Save(entity *T) error {
	rec := P(entity)
	if rec.GetID() == 0 {
		rec.SetVersion(1)
		return s.db.Create(entity).Error
	}

	expected := rec.GetVersion()
	rec.SetVersion(expected + 1)
	res := s.db.Model(entity).Where("version = ?", expected).Select("*").Updates(entity)
	if res.Error != nil {
		rec.SetVersion(expected)
		return res.Error
	}
	if res.RowsAffected == 0 {
		rec.SetVersion(expected)
		return ErrStaleVersion
	}
	return nil
}

func (s *gormStore[T, P]) DeleteByID(id int64) error {
	res := s.db.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNothingDeleted
	}
	return nil
}

func (s *gormStore[T, P]) Delete(entity *T) error {
	res := s.db.Delete(entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNothingDeleted
	}
	return nil
}
