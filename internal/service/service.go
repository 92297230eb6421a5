package service

import (
	"go.uber.org/zap"

	"github.com/riofed5/Book-reservation/internal/repository"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events Events
}

func NewService(repo repository.Repository, events Events, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
	}
}
