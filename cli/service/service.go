package service

import (
	"github.com/gltf-insight/animctl/client"
	"github.com/gltf-insight/animctl/common/logging"
	"github.com/rs/zerolog"
)

type Service struct {
	client client.Client
	logger zerolog.Logger
}

// NewService initializes a new Service with the given client
func NewService(c client.Client) *Service {
	return &Service{
		client: c,
		logger: logging.NewLogger("cliService"),
	}
}
