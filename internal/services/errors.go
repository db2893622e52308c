package services

import (
	"errors"

	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
)

// logDegraded records a graph failure that a read path is about to swallow.
func logDegraded(log *logger.Logger, op string, err error) {
	log.Warn("graph query degraded to empty result",
		"op", op,
		"kind", sparql.KindOf(err).String(),
		"timeout", sparql.IsTimeout(err),
		"error", err,
	)
}
