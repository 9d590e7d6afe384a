package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"poseidon/internal/authz"
	apperrors "poseidon/internal/errors"
	"poseidon/internal/models"
	"poseidon/internal/pagination"
	"poseidon/internal/services"
)

// resource describes how one entity type is exposed over HTTP.
type resource[T any, R any] struct {
	// name is used in messages and audit entries, key as the JSON envelope.
	name string
	key  string
	// toModel converts a bound request. creating is false on update.
	toModel func(req *R, actor string, creating bool) *T
	// present shapes an entity for output; nil renders it as is.
	present func(entity *T) any
}

// ResourceHandler serves list, read, create, update and delete for one entity.
type ResourceHandler[T any, R any] struct {
	res    resource[T, R]
	svc    services.Servicer[T]
	remove func(id int64, actor authz.Actor) error
	audit  services.AuditServicer
}

func (h *ResourceHandler[T, R]) render(entity *T) any {
	if h.res.present == nil {
		return entity
	}
	return h.res.present(entity)
}

func recordID(entity any) int64 {
	if rec, ok := entity.(models.Record); ok {
		return rec.GetID()
	}
	return 0
}

// List returns all records, or one page when page or page_size is given.
func (h *ResourceHandler[T, R]) List(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidArgument, "Invalid pagination parameters"), nil)
		return
	}

	if page.Requested() {
		result, err := h.svc.FindPage(page)
		if err != nil {
			respondWithError(c, err, nil)
			return
		}
		data := make([]any, 0, len(result.Data))
		for i := range result.Data {
			data = append(data, h.render(&result.Data[i]))
		}
		c.JSON(http.StatusOK, pagination.PageResponse[any]{
			Data:       data,
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalItems: result.TotalItems,
			TotalPages: result.TotalPages,
		})
		return
	}

	entities, err := h.svc.FindAll()
	if err != nil {
		respondWithError(c, err, nil)
		return
	}
	data := make([]any, 0, len(entities))
	for i := range entities {
		data = append(data, h.render(&entities[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Get returns the record stored under :id.
func (h *ResourceHandler[T, R]) Get(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}

	entity, ok, err := h.svc.FindByID(id)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound,
			fmt.Sprintf("%s not found with id: %d", h.res.name, id)), nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{h.res.key: h.render(entity)})
}

// Create stores a new record credited to the authenticated actor.
func (h *ResourceHandler[T, R]) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}

	var req R
	if !bindJSON(c, &req) {
		return
	}

	entity, err := h.svc.Create(h.res.toModel(&req, actor.Username, true))
	if err != nil {
		respondWithError(c, err, &req)
		return
	}

	id := recordID(entity)
	h.audit.Log(actor.Username, "CREATE", h.res.name, id, c.ClientIP(), nil)

	c.JSON(http.StatusCreated, gin.H{
		h.res.key: h.render(entity),
		"message": h.res.name + " created successfully",
	})
}

// Update replaces the record stored under :id.
func (h *ResourceHandler[T, R]) Update(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}

	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}

	var req R
	if !bindJSON(c, &req) {
		return
	}

	entity, err := h.svc.Update(id, h.res.toModel(&req, actor.Username, false))
	if err != nil {
		respondWithError(c, err, &req)
		return
	}

	h.audit.Log(actor.Username, "UPDATE", h.res.name, id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{
		h.res.key: h.render(entity),
		"message": h.res.name + " updated successfully",
	})
}

// Delete removes the record stored under :id.
func (h *ResourceHandler[T, R]) Delete(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}

	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}

	if err := h.remove(id, actor); err != nil {
		respondWithError(c, err, nil)
		return
	}

	h.audit.Log(actor.Username, "DELETE", h.res.name, id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: h.res.name + " deleted successfully"})
}

// Register mounts the five routes on group.
func (h *ResourceHandler[T, R]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func newOwnedHandler[T any, R any](res resource[T, R], svc services.OwnedServicer[T], audit services.AuditServicer) *ResourceHandler[T, R] {
	return &ResourceHandler[T, R]{res: res, svc: svc, remove: svc.DeleteByID, audit: audit}
}

func newPlainHandler[T any, R any](res resource[T, R], svc services.DeleteServicer[T], audit services.AuditServicer) *ResourceHandler[T, R] {
	return &ResourceHandler[T, R]{
		res:    res,
		svc:    svc,
		remove: func(id int64, _ authz.Actor) error { return svc.DeleteByID(id) },
		audit:  audit,
	}
}
