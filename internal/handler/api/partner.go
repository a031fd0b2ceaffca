package api

import (
	"errors"
	"net/http"

	reqdto "store-reservation/internal/handler/dto/request"
	resdto "store-reservation/internal/handler/dto/response"
	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/handler/middleware"
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	cmds       commands.PartnerCommands
	resQueries queries.ReservationQueries
}

func NewPartnerHandler(cmds commands.PartnerCommands, resQueries queries.ReservationQueries) *PartnerHandler {
	return &PartnerHandler{cmds: cmds, resQueries: resQueries}
}

// @Summary Register partner
// @Description Register a new partner account
// @Tags partners
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /partners [post]
func (h *PartnerHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	err := h.cmds.Register(c.Request.Context(), commands.RegisterPartnerRequest{
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

// @Summary List incoming reservations
// @Description List reservations for the authenticated partner's stores
// @Tags partners
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param date query string false "Filter by visit date (2006-01-02)"
// @Param page query int false "Page number (default 0)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /partners/me/reservations [get]
func (h *PartnerHandler) ListReservations(c *gin.Context) {
	partnerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing subject"), "Unauthorized", nil)
		return
	}

	filter, err := parseListFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}

	views, err := h.resQueries.ListForPartner(c.Request.Context(), partnerID, filter, parsePage(c))
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
