package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cocoatrail/festival-api/internal/device"
	"github.com/cocoatrail/festival-api/internal/favourites/usecase/command"
	"github.com/cocoatrail/festival-api/internal/favourites/usecase/query"
	"github.com/cocoatrail/festival-api/pkg/logger"
)

// FavouritesHandler serves device registration and the per-device
// favourite/tasted endpoints.
type FavouritesHandler struct {
	toggleFavouriteHandler *command.ToggleFavouriteHandler
	toggleTastedHandler    *command.ToggleTastedHandler
	getStateHandler        *query.GetStateHandler
	tokens                 *device.TokenManager
}

// NewFavouritesHandler creates a favourites handler.
func NewFavouritesHandler(
	toggleFavouriteHandler *command.ToggleFavouriteHandler,
	toggleTastedHandler *command.ToggleTastedHandler,
	getStateHandler *query.GetStateHandler,
	tokens *device.TokenManager,
) *FavouritesHandler {
	return &FavouritesHandler{
		toggleFavouriteHandler: toggleFavouriteHandler,
		toggleTastedHandler:    toggleTastedHandler,
		getStateHandler:        getStateHandler,
		tokens:                 tokens,
	}
}

// Response is the common JSON envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes mounts the device and favourites endpoints.
func (h *FavouritesHandler) RegisterRoutes(app fiber.Router) {
	required := device.RequireDevice(h.tokens)

	app.Post("/api/devices", h.RegisterDevice)
	app.Get("/api/me/favourites", required, h.GetFavourites)
	app.Post("/api/me/favourites/:id/toggle", required, h.ToggleFavourite)
	app.Post("/api/me/tasted/:id/toggle", required, h.ToggleTasted)
}

// RegisterDevice handles POST /api/devices
func (h *FavouritesHandler) RegisterDevice(c *fiber.Ctx) error {
	deviceID, token, err := h.tokens.Issue()
	if err != nil {
		logger.Error(c.UserContext()).Err(err).Msg("Failed to issue device token")
		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Success: false,
			Error:   "Failed to register device",
		})
	}

	logger.Info(c.UserContext()).Str("device_id", deviceID).Msg("Device registered")

	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: "Device registered",
		Data: fiber.Map{
			"device_id": deviceID,
			"token":     token,
		},
	})
}

// GetFavourites handles GET /api/me/favourites
func (h *FavouritesHandler) GetFavourites(c *fiber.Ctx) error {
	deviceID := device.FromContext(c)
	state := h.getStateHandler.Handle(c.UserContext(), query.GetStateQuery{DeviceID: deviceID})

	return c.JSON(Response{
		Success: true,
		Data: fiber.Map{
			"favourites": state.FavouriteIDs(),
			"tasted":     state.TastedIDs(),
		},
	})
}

// ToggleFavourite handles POST /api/me/favourites/:id/toggle
func (h *FavouritesHandler) ToggleFavourite(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false,
			Error:   "Invalid flavour ID",
		})
	}

	marked, err := h.toggleFavouriteHandler.Handle(c.UserContext(), command.ToggleFavouriteCommand{
		DeviceID:  device.FromContext(c),
		FlavourID: id,
	})
	if err != nil {
		logger.Error(c.UserContext()).Err(err).Int("flavour_id", id).Msg("Failed to toggle favourite")
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(Response{
		Success: true,
		Data: fiber.Map{
			"flavour_id": id,
			"favourite":  marked,
		},
	})
}

// ToggleTasted handles POST /api/me/tasted/:id/toggle
func (h *FavouritesHandler) ToggleTasted(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false,
			Error:   "Invalid flavour ID",
		})
	}

	marked, err := h.toggleTastedHandler.Handle(c.UserContext(), command.ToggleTastedCommand{
		DeviceID:  device.FromContext(c),
		FlavourID: id,
	})
	if err != nil {
		logger.Error(c.UserContext()).Err(err).Int("flavour_id", id).Msg("Failed to toggle tasted")
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(Response{
		Success: true,
		Data: fiber.Map{
			"flavour_id": id,
			"tasted":     marked,
		},
	})
}
