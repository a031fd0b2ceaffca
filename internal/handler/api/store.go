package api

import (
	"errors"
	"net/http"

	domstore "store-reservation/internal/domain/store"
	reqdto "store-reservation/internal/handler/dto/request"
	resdto "store-reservation/internal/handler/dto/response"
	"store-reservation/internal/handler/httperr"
	"store-reservation/internal/handler/middleware"
	"store-reservation/internal/usecase/commands"
	"store-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	cmds       commands.StoreCommands
	q          queries.StoreQueries
	revQueries queries.ReviewQueries
}

func NewStoreHandler(cmds commands.StoreCommands, q queries.StoreQueries, revQueries queries.ReviewQueries) *StoreHandler {
	return &StoreHandler{cmds: cmds, q: q, revQueries: revQueries}
}

// @Summary Register store
// @Description Register a store under the authenticated partner
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterStoreRequest true "Register store request"
// @Success 201 {object} resdto.StoreResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /stores [post]
func (h *StoreHandler) Register(c *gin.Context) {
	partnerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing subject"), "Unauthorized", nil)
		return
	}
	var req reqdto.RegisterStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if _, err := h.cmds.Register(c.Request.Context(), req.ToCommand(partnerID)); err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateStoreName):
			httperr.AbortWithError(c, http.StatusConflict, err, "Store name already in use", nil)
		case errors.Is(err, domstore.ErrEmptyStoreName), errors.Is(err, domstore.ErrEmptyStoreAddr):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid store fields", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Register store failed", nil)
		}
		return
	}

	view, err := h.q.GetByName(c.Request.Context(), req.StoreName)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load store", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStoreView(view))
}

// @Summary Update store info
// @Description Update address and description of an owned store
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Store name"
// @Param request body reqdto.UpdateStoreRequest true "Update store request"
// @Success 200 {object} resdto.StoreResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stores/{name} [put]
func (h *StoreHandler) Update(c *gin.Context) {
	partnerID, ok := middleware.GetSubjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing subject"), "Unauthorized", nil)
		return
	}
	storeName := c.Param("name")
	var req reqdto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateInfo(c.Request.Context(), req.ToCommand(partnerID, storeName)); err != nil {
		switch {
		case errors.Is(err, commands.ErrStoreNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
		case errors.Is(err, commands.ErrStoreNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not your store", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Update store failed", nil)
		}
		return
	}

	view, err := h.q.GetByName(c.Request.Context(), storeName)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load store", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStoreView(view))
}

// @Summary Search stores
// @Description Search stores by partial name with sort options
// @Tags stores
// @Produce json
// @Param keyword query string false "Partial store name"
// @Param sort query string false "Sort: ALPHABET, RATING, RATING_COUNT (default ALPHABET)"
// @Param page query int false "Page number (default 0)"
// @Success 200 {array} resdto.StoreResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stores [get]
func (h *StoreHandler) Search(c *gin.Context) {
	sort, err := queries.ParseStoreSort(c.Query("sort"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort type", nil)
		return
	}

	views, err := h.q.Search(c.Request.Context(), c.Query("keyword"), sort, parsePage(c))
	if err != nil {
		if errors.Is(err, queries.ErrNoStores) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No stores found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStoreViews(views))
}

// @Summary Get store
// @Description Get a store detail by name
// @Tags stores
// @Produce json
// @Param name path string true "Store name"
// @Success 200 {object} resdto.StoreResponse
// @Failure 404 {object} map[string]string
// @Router /stores/{name} [get]
func (h *StoreHandler) Get(c *gin.Context) {
	view, err := h.q.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, queries.ErrStoreNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStoreView(view))
}

// @Summary List store reviews
// @Description List reviews for a store with sort options
// @Tags stores
// @Produce json
// @Param name path string true "Store name"
// @Param sort query string false "Sort: LATEST, RATING_DESC, RATING_ASC (default LATEST)"
// @Param page query int false "Page number (default 0)"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stores/{name}/reviews [get]
func (h *StoreHandler) ListReviews(c *gin.Context) {
	sort, err := queries.ParseReviewSort(c.Query("sort"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sort type", nil)
		return
	}

	views, err := h.revQueries.ListByStore(c.Request.Context(), c.Param("name"), sort, parsePage(c))
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
