package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
	"github.com/BruksfildServices01/restaurant-hours/internal/dto"
	"github.com/BruksfildServices01/restaurant-hours/internal/httperr"
	"github.com/BruksfildServices01/restaurant-hours/internal/httpresp"
	ucRestaurant "github.com/BruksfildServices01/restaurant-hours/internal/usecase/restaurant"
)

// ======================================================
// HANDLER
// ======================================================

type OpenLister interface {
	Execute(ctx context.Context, source string, day openhours.Day, at openhours.Clock) ([]openhours.Restaurant, error)
	ExecuteAt(ctx context.Context, source string, ts time.Time) ([]openhours.Restaurant, error)
}

type Importer interface {
	Execute(ctx context.Context) (*ucRestaurant.ImportResult, error)
}

type Catalog interface {
	All() []openhours.Restaurant
}

type RestaurantHandler struct {
	listOpen OpenLister
	importer Importer
	catalog  Catalog
}

func NewRestaurantHandler(
	listOpen OpenLister,
	importer Importer,
	catalog Catalog,
) *RestaurantHandler {
	return &RestaurantHandler{
		listOpen: listOpen,
		importer: importer,
		catalog:  catalog,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OpenQuery struct {
	Day    string `form:"day" binding:"required"`
	Time   string `form:"time" binding:"required"`
	Source string `form:"source"`
}

type OpenAtQuery struct {
	Timestamp string `form:"timestamp" binding:"required"`
	Source    string `form:"source"`
}

// ======================================================
// LIST
// ======================================================

func (h *RestaurantHandler) List(c *gin.Context) {
	httpresp.List(c, dto.Restaurants(h.catalog.All()))
}

// ======================================================
// OPEN (day + time)
// ======================================================

func (h *RestaurantHandler) Open(c *gin.Context) {
	var q OpenQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	day, ok := openhours.ParseDay(q.Day)
	if !ok {
		httperr.BadRequest(c, "invalid_day")
		return
	}

	at, err := openhours.ParseClock(q.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_time")
		return
	}

	rs, err := h.listOpen.Execute(c.Request.Context(), strings.ToLower(q.Source), day, at)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.OpenRestaurants(rs))
}

// ======================================================
// OPEN (timestamp)
// ======================================================

func (h *RestaurantHandler) OpenAt(c *gin.Context) {
	var q OpenAtQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_request")
		return
	}

	ts, err := time.Parse(time.RFC3339, q.Timestamp)
	if err != nil {
		httperr.BadRequest(c, "invalid_timestamp")
		return
	}

	rs, err := h.listOpen.ExecuteAt(c.Request.Context(), strings.ToLower(q.Source), ts)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.OpenRestaurants(rs))
}

// ======================================================
// IMPORT
// ======================================================

func (h *RestaurantHandler) Import(c *gin.Context) {
	result, err := h.importer.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "import_failed", "Could not import restaurants.")
		return
	}

	resp := dto.ImportDTO{
		Accepted: result.Accepted(),
		Dropped:  make([]dto.DroppedRecordDTO, 0, len(result.Dropped)),
	}
	for _, d := range result.Dropped {
		resp.Dropped = append(resp.Dropped, dto.DroppedRecordDTO(d))
	}

	httpresp.OK(c, resp)
}
