package api

import (
	"time"

	"store-reservation/internal/domain/reservation"
	"store-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func parseListFilter(c *gin.Context) (queries.ListFilter, error) {
	var filter queries.ListFilter

	if v := c.Query("status"); v != "" {
		status, err := reservation.ParseStatus(v)
		if err != nil {
			return queries.ListFilter{}, err
		}
		filter.Status = &status
	}

	if v := c.Query("date"); v != "" {
		date, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return queries.ListFilter{}, err
		}
		filter.Date = &date
	}

	return filter, nil
}
