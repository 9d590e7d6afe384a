package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"poseidon/internal/models"
	"poseidon/internal/services"
)

// UserHandler handles administration of application users.
type UserHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserServicer, auditService services.AuditServicer) *UserHandler {
	return &UserHandler{userService: userService, auditService: auditService}
}

// UserRequest represents the payload for creating or updating a user. The
// password is plaintext and is never echoed back.
type UserRequest struct {
	Version  int64  `json:"version"`
	Username string `json:"username" binding:"notblank,max=125"`
	Password string `json:"password,omitempty" binding:"required"`
	Fullname string `json:"fullname" binding:"notblank,max=125"`
	Role     string `json:"role" binding:"notblank,max=125"`
}

// echo returns req without its password, for rendering next to an error.
func (req UserRequest) echo() UserRequest {
	req.Password = ""
	return req
}

func (req *UserRequest) toModel() *models.User {
	return &models.User{
		Base:     models.Base{Version: req.Version},
		Username: req.Username,
		Fullname: req.Fullname,
		Role:     req.Role,
	}
}

// List handles GET /users
// @Summary     List users
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]UserResponse
// @Failure     403 {object} ErrorResponse "Not an administrator"
// @Router      /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.FindAll()
	if err != nil {
		respondWithError(c, err, nil)
		return
	}
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u.ID, u.Version, u.Username, u.Fullname, u.Role))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Get handles GET /users/:id
// @Summary     Get a user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} UserResponse
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}
	user, err := h.userService.FindByID(id)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user.ID, user.Version, user.Username, user.Fullname, user.Role)})
}

// Create handles POST /users
// @Summary     Create a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UserRequest true "User"
// @Success     201 {object} UserResponse
// @Failure     400 {object} ErrorResponse "Validation failed"
// @Failure     409 {object} ErrorResponse "Username taken"
// @Router      /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err, nil)
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err, req.echo())
		return
	}

	user, err := h.userService.Create(req.toModel(), req.Password)
	if err != nil {
		respondWithError(c, err, req.echo())
		return
	}

	h.auditService.Log(actor.Username, "CREATE", "User", user.ID, c.ClientIP(), map[string]any{"username": user.Username})

	c.JSON(http.StatusCreated, gin.H{
		"user":    toUserResponse(user.ID, user.Version, user.Username, user.Fullname, user.Role),
		"message": "User created successfully",
	})
}

// Update handles PUT /users/:id
// @Summary     Update a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Param       request body UserRequest true "User"
// @Success     200 {object} UserResponse
// @Failure     400 {object} ErrorResponse "Validation failed"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     409 {object} ErrorResponse "Conflict"
// @Router      /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
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

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err, req.echo())
		return
	}

	user, err := h.userService.Update(id, req.toModel(), req.Password)
	if err != nil {
		respondWithError(c, err, req.echo())
		return
	}

	h.auditService.Log(actor.Username, "UPDATE", "User", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{
		"user":    toUserResponse(user.ID, user.Version, user.Username, user.Fullname, user.Role),
		"message": "User updated successfully",
	})
}

// Delete handles DELETE /users/:id
// @Summary     Delete a user
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "User ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
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

	if err := h.userService.Delete(id); err != nil {
		respondWithError(c, err, nil)
		return
	}

	h.auditService.Log(actor.Username, "DELETE", "User", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}

// Register mounts the user routes on group.
func (h *UserHandler) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}
