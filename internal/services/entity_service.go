package services

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"poseidon/internal/authz"
	apperrors "poseidon/internal/errors"
	"poseidon/internal/logger"
	"poseidon/internal/metrics"
	"poseidon/internal/models"
	"poseidon/internal/pagination"
	"poseidon/internal/repository"
)

// entityHooks plugs the per-entity rules into the shared CRUD flow.
type entityHooks[T any] struct {
	name string
	// onCreate stamps server-controlled fields on a new record.
	onCreate func(entity *T, now time.Time)
	// onUpdate copies preserved fields from stored and stamps revision fields.
	onUpdate func(stored, incoming *T, now time.Time)
	validate func(entity *T) []apperrors.FieldError
}

// entityService implements the CRUD flow for one entity type.
type entityService[T any, P repository.Record[T]] struct {
	store repository.Store[T]
	hooks entityHooks[T]
	log   *zap.SugaredLogger
	now   func() time.Time
}

func newEntityService[T any, P repository.Record[T]](db *gorm.DB, hooks entityHooks[T]) *entityService[T, P] {
	return &entityService[T, P]{
		store: repository.New[T, P](db),
		hooks: hooks,
		log:   logger.Named(hooks.name),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *entityService[T, P]) notFound(id int64) error {
	return apperrors.WithMessage(apperrors.ErrNotFound, fmt.Sprintf("%s not found with id: %d", s.hooks.name, id))
}

func invalidID(id int64) error {
	return apperrors.WithMessage(apperrors.ErrInvalidArgument, fmt.Sprintf("Invalid ID: %d", id))
}

// FindAll returns every stored record.
func (s *entityService[T, P]) FindAll() ([]T, error) {
	entities, err := s.store.FindAll()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if entities == nil {
		entities = []T{}
	}
	return entities, nil
}

// FindPage returns one page of records ordered by id.
func (s *entityService[T, P]) FindPage(page pagination.PageRequest) (*pagination.PageResponse[T], error) {
	page.Defaults()

	entities, total, err := s.store.FindPage(page)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entities, page, total)
	return &result, nil
}

// FindByID looks a record up. Non-positive ids are treated as absent.
func (s *entityService[T, P]) FindByID(id int64) (*T, bool, error) {
	if id <= 0 {
		return nil, false, nil
	}
	entity, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entity, true, nil
}

// Create validates and stores a new record. Any id on entity is discarded.
func (s *entityService[T, P]) Create(entity *T) (*T, error) {
	if entity == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidArgument, s.hooks.name+" is required")
	}

	rec := P(entity)
	rec.SetID(0)
	if s.hooks.onCreate != nil {
		s.hooks.onCreate(entity, s.now())
	}
	if errs := s.hooks.validate(entity); len(errs) > 0 {
		return nil, apperrors.Validation(errs)
	}

	if err := s.store.Save(entity); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("created", "id", rec.GetID())
	metrics.RecordWrite(s.hooks.name, "create")
	return entity, nil
}

// Update replaces the record stored under id. The path id always wins over
// the id carried by entity, and entity must carry the version it was read at.
func (s *entityService[T, P]) Update(id int64, entity *T) (*T, error) {
	if id <= 0 {
		return nil, invalidID(id)
	}
	if entity == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidArgument, s.hooks.name+" is required")
	}

	stored, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.notFound(id)
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	rec := P(entity)
	rec.SetID(id)
	if s.hooks.onUpdate != nil {
		s.hooks.onUpdate(stored, entity, s.now())
	}
	if errs := s.hooks.validate(entity); len(errs) > 0 {
		return nil, apperrors.Validation(errs)
	}

	if rec.GetVersion() != P(stored).GetVersion() {
		return nil, apperrors.ErrConcurrencyConflict
	}
	if err := s.store.Save(entity); err != nil {
		if errors.Is(err, repository.ErrStaleVersion) {
			return nil, apperrors.ErrConcurrencyConflict
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("updated", "id", id, "version", rec.GetVersion())
	metrics.RecordWrite(s.hooks.name, "update")
	return entity, nil
}

func (s *entityService[T, P]) deleteByID(id int64) error {
	if id <= 0 {
		return invalidID(id)
	}
	if err := s.store.DeleteByID(id); err != nil {
		if errors.Is(err, repository.ErrNothingDeleted) {
			return s.notFound(id)
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("deleted", "id", id)
	metrics.RecordWrite(s.hooks.name, "delete")
	return nil
}

// plainService deletes unconditionally.
type plainService[T any, P repository.Record[T]] struct {
	*entityService[T, P]
}

func newPlainService[T any, P repository.Record[T]](db *gorm.DB, hooks entityHooks[T]) *plainService[T, P] {
	return &plainService[T, P]{newEntityService[T, P](db, hooks)}
}

// DeleteByID removes the record stored under id.
func (s *plainService[T, P]) DeleteByID(id int64) error {
	return s.deleteByID(id)
}

// ownedRecord is a Record that reports its creator.
type ownedRecord[T any] interface {
	*T
	models.Record
	models.Owned
}

// ownedService deletes only when the ownership policy allows it.
type ownedService[T any, P ownedRecord[T]] struct {
	*entityService[T, P]
}

func newOwnedService[T any, P ownedRecord[T]](db *gorm.DB, hooks entityHooks[T]) *ownedService[T, P] {
	return &ownedService[T, P]{newEntityService[T, P](db, hooks)}
}

// DeleteByID loads the record, checks that actor may delete it and removes it.
// A refused delete leaves the record untouched.
func (s *ownedService[T, P]) DeleteByID(id int64, actor authz.Actor) error {
	if id <= 0 {
		return invalidID(id)
	}

	stored, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.notFound(id)
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := authz.AuthorizeDelete(actor, P(stored)); err != nil {
		s.log.Warnw("delete refused", "id", id, "actor", actor.Username, "owner", P(stored).Owner())
		metrics.RecordDenial(s.hooks.name)
		return err
	}

	if err := s.store.Delete(stored); err != nil {
		if errors.Is(err, repository.ErrNothingDeleted) {
			return s.notFound(id)
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.log.Infow("deleted", "id", id, "actor", actor.Username)
	metrics.RecordWrite(s.hooks.name, "delete")
	return nil
}
