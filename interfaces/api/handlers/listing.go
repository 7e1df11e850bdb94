package handlers

import (
	"github.com/gofiber/fiber/v2"

	"school-cms/pkg/listing"
)

// listQuery reads search, page and per_page plus the filter named filterParam
func listQuery(c *fiber.Ctx, filterParam string) listing.Query {
	return listing.Query{
		Search:  c.Query("search"),
		Filter:  c.Query(filterParam),
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", listing.DefaultPerPage),
	}
}
