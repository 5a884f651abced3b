package controllers

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/tugascript/devlogs/storeapps/internal/services"
	"github.com/tugascript/devlogs/storeapps/internal/utils"
)

type Controllers struct {
	logger   *slog.Logger
	services *services.Services
	validate *validator.Validate
}

func NewControllers(
	logger *slog.Logger,
	services *services.Services,
	validate *validator.Validate,
) *Controllers {
	return &Controllers{
		logger:   logger.With(utils.BaseLayer, utils.ControllersLogLayer),
		services: services,
		validate: validate,
	}
}
