package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "store-reservation/internal/handler/dto/request"
	resdto "store-reservation/internal/handler/dto/response"
	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/handler/middleware"
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds       commands.UserCommands
	resQueries queries.ReservationQueries
	revQueries queries.ReviewQueries
}

func NewUserHandler(cmds commands.UserCommands, resQueries queries.ReservationQueries, revQueries queries.ReviewQueries) *UserHandler {
	return &UserHandler{cmds: cmds, resQueries: resQueries, revQueries: revQueries}
}

// @Summary Register user
// @Description Register a new user account
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	err := h.cmds.Register(c.Request.Context(), commands.RegisterUserRequest{
		ID:            req.ID,
		Password:      req.Password,
		PasswordCheck: req.PasswordCheck,
		Phone:         req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPasswordCheckMismatch):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Password confirmation does not match", nil)
		case errors.Is(err, commands.ErrDuplicateLoginID):
			httperr.AbortWithError(c, http.StatusConflict, err, "Login id already in use", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Registration failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

// @Summary List own reservations
// @Description List reservations booked by the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param date query string false "Filter by visit date (2006-01-02)"
// @Param page query int false "Page number (default 0)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/me/reservations [get]
func (h *UserHandler) ListReservations(c *gin.Context) {
	userID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing subject"), "Unauthorized", nil)
		return
	}

	filter, err := parseListFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}

	views, err := h.resQueries.ListForUser(c.Request.Context(), userID, filter, parsePage(c))
	if err != nil {
		if errors.Is(err, queries.ErrNoReservations) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No reservations found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List own reviews
// @Description List reviews written by the authenticated user, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 0)"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 404 {object} map[string]string
// @Router /users/me/reviews [get]
func (h *UserHandler) ListReviews(c *gin.Context) {
	userID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing subject"), "Unauthorized", nil)
		return
	}

	views, err := h.revQueries.ListByUser(c.Request.Context(), userID, parsePage(c))
	if err != nil {
		if errors.Is(err, queries.ErrNoReviews) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No reviews found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views))
}

func parsePage(c *gin.Context) int {
	page := 0
	if v := c.Query("page"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil && iv > 0 {
			page = iv
		}
	}
	return page
}
