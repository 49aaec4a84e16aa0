package repository

import (
	"github.com/PromoPilot/scheduler-service/internal/repository/inmemory"
	"go.uber.org/zap"
)

type Repository struct {
	Memory *inmemory.MemoryRepository
}

func New(logger *zap.Logger) *Repository {
	return &Repository{
		Memory: inmemory.New(logger),
	}
}
