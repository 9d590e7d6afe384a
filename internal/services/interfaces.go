package services

import (
	"poseidon/internal/authz"
	"poseidon/internal/models"
	"poseidon/internal/pagination"
)

// Servicer is the read and write contract shared by every reference-data entity.
type Servicer[T any] interface {
	FindAll() ([]T, error)
	FindPage(page pagination.PageRequest) (*pagination.PageResponse[T], error)
	// FindByID reports ok=false, without an error, for non-positive or absent ids.
	FindByID(id int64) (entity *T, ok bool, err error)
	Create(entity *T) (*T, error)
	Update(id int64, entity *T) (*T, error)
}

// DeleteServicer is a Servicer for entities without an owner.
type DeleteServicer[T any] interface {
	Servicer[T]
	DeleteByID(id int64) error
}

// OwnedServicer is a Servicer whose deletes are gated by the ownership policy.
type OwnedServicer[T any] interface {
	Servicer[T]
	DeleteByID(id int64, actor authz.Actor) error
}

type (
	BidListServicer    = OwnedServicer[models.BidList]
	CurvePointServicer = OwnedServicer[models.CurvePoint]
	RatingServicer     = DeleteServicer[models.Rating]
	RuleNameServicer   = DeleteServicer[models.RuleName]
	TradeServicer      = DeleteServicer[models.Trade]
)

// UserServicer defines the contract for user management. Returned users never
// carry the password hash.
type UserServicer interface {
	FindAll() ([]models.User, error)
	FindByID(id int64) (*models.User, error)
	Create(user *models.User, rawPassword string) (*models.User, error)
	Update(id int64, user *models.User, rawPassword string) (*models.User, error)
	Delete(id int64) error
	// Authenticate returns the user when username and password match.
	Authenticate(username, rawPassword string) (*models.User, error)
	// EnsureAdmin creates an ADMIN user named username unless it already exists.
	EnsureAdmin(username, rawPassword, fullname string) (created bool, err error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(username, action, resourceType string, resourceID int64, ipAddress string, changes map[string]any)
	FindRecent(limit int) ([]models.AuditLog, error)
}
