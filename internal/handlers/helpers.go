package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// parseJSONObject returns the request body when it is a non-empty JSON object.
func parseJSONObject(c *fiber.Ctx) (gjson.Result, bool) {
	body := c.Body()
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, false
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() || len(parsed.Map()) == 0 {
		return gjson.Result{}, false
	}

	return parsed, true
}

// optionalID reads an id that may be sent as a number or a numeric string.
// Absent, zero and non-numeric values mean "no id".
func optionalID(value gjson.Result) *int64 {
	id := value.Int()
	if !value.Exists() || id <= 0 {
		return nil
	}
	return &id
}

// parseUserID reads a user id from a query string or form value. An empty
// value is reported as absent; ok is false when the value is not a number.
func parseUserID(raw string) (userID *int64, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	if id <= 0 {
		return nil, true
	}

	return &id, true
}
