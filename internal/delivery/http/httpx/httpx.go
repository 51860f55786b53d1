// Package httpx holds the small request/response helpers shared by all
// handlers.
package httpx

import (
	"github.com/gofiber/fiber/v2"

	"github.com/godcandidate/warehouse-management-app/internal/listview"
	"github.com/godcandidate/warehouse-management-app/internal/validation"
)

// ListQuery builds the collection query from request parameters. Only the
// named filter keys are read, so unknown query params never leak into the
// store.
func ListQuery(c *fiber.Ctx, filterKeys ...string) listview.Query {
	q := listview.Query{
		Page:     c.QueryInt("page", 0),
		PageSize: c.QueryInt("pageSize", listview.DefaultPageSize),
		Search:   c.Query("search"),
		Filters:  map[string]string{},
	}
	for _, k := range filterKeys {
		if v := c.Query(k); v != "" {
			q.Filters[k] = v
		}
	}
	return q.Normalize()
}

// WriteValidation renders a field-keyed validation failure. 422 keeps it
// distinct from malformed-body 400s.
func WriteValidation(c *fiber.Ctx, ve validation.Errors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ve})
}
