package controller

import (
	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

var InvalidRequestError = ErrorResponse{
	Error: "The request was invalid and not recognized",
}

func ErrInvalidRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(&InvalidRequestError)
}

var UnsupportedActionError = ErrorResponse{
	Error: "The requested action is not supported in this API",
}

func ErrUnsupportedAction(c *fiber.Ctx) error {
	// 200 keeps older clients that only check the body working
	return c.Status(fiber.StatusOK).JSON(&UnsupportedActionError)
}

func ErrBadrequest(c *fiber.Ctx, errorText string) error {
	return c.Status(fiber.StatusBadRequest).JSON(&ErrorResponse{
		Error: errorText,
	})
}

func ErrInternalServerError(c *fiber.Ctx, errorText string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(&ErrorResponse{
		Error: errorText,
	})
}
