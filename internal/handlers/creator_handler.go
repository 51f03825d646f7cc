package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/Ludovic42/my-batik-store-sub001/internal/models"
	"github.com/Ludovic42/my-batik-store-sub001/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreatorHandler handles HTTP requests for creators.
type CreatorHandler struct {
	service  *services.CreatorService
	validate *validator.Validate
}

// NewCreatorHandler creates a new CreatorHandler.
func NewCreatorHandler(service *services.CreatorService) *CreatorHandler {
	return &CreatorHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the creator routes with the Fiber app.
func (h *CreatorHandler) RegisterRoutes(router fiber.Router) {
	creatorRoutes := router.Group("/creators")
	creatorRoutes.Get("/", h.HandleGetCreators)
	creatorRoutes.Get("/:id", h.HandleGetCreatorByID)
	creatorRoutes.Post("/", h.HandleCreateCreator)
	creatorRoutes.Delete("/:id", h.HandleDeleteCreator)
}

// HandleGetCreators retrieves all creators.
func (h *CreatorHandler) HandleGetCreators(c *fiber.Ctx) error {
	creators, err := h.service.GetAllCreators()
	if err != nil {
		log.Printf("Error getting all creators: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve creators",
			"error":   err.Error(),
		})
	}
	return c.JSON(creators)
}

// HandleGetCreatorByID retrieves a single creator, with their items, by ID.
func (h *CreatorHandler) HandleGetCreatorByID(c *fiber.Ctx) error {
	creatorID := c.Params("id")
	creator, err := h.service.GetCreatorByID(creatorID)
	if err != nil {
		log.Printf("Error getting creator by ID %s: %v", creatorID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Creator with ID %s not found", creatorID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve creator",
			"error":   err.Error(),
		})
	}
	return c.JSON(creator)
}

// HandleCreateCreator creates a new creator.
func (h *CreatorHandler) HandleCreateCreator(c *fiber.Ctx) error {
	var creator models.Creator
	if err := c.BodyParser(&creator); err != nil {
		log.Printf("Error parsing creator request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(creator); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreateCreator(&creator); err != nil {
		log.Printf("Error creating creator: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create creator",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(creator)
}

// HandleDeleteCreator deletes a creator by ID.
func (h *CreatorHandler) HandleDeleteCreator(c *fiber.Ctx) error {
	creatorID := c.Params("id")
	if err := h.service.DeleteCreator(creatorID); err != nil {
		log.Printf("Error deleting creator %s: %v", creatorID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Creator with ID %s not found", creatorID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete creator",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Creator %s deleted successfully", creatorID),
	})
}
