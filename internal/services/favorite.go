package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/animalloo/animalloo-backend/internal/data/repos"
	"github.com/animalloo/animalloo-backend/internal/platform/ctxutil"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
)

type FavoriteService interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, facilityID string) error
	Remove(ctx context.Context, facilityID string) error
}

type favoriteService struct {
	log  *logger.Logger
	repo repos.FavoriteRepo
}

func NewFavoriteService(log *logger.Logger, repo repos.FavoriteRepo) FavoriteService {
	return &favoriteService{log: log.With("service", "FavoriteService"), repo: repo}
}

func userFromContext(ctx context.Context) (string, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == "" {
		return "", ErrUnauthorized
	}
	return rd.UserID, nil
}

func (fs *favoriteService) List(ctx context.Context) ([]string, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	favs, err := fs.repo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.FacilityID)
	}
	return ids, nil
}

func (fs *favoriteService) Add(ctx context.Context, facilityID string) error {
	userID, err := userFromContext(ctx)
	if err != nil {
		return err
	}
	facilityID = strings.TrimSpace(facilityID)
	if facilityID == "" {
		return fmt.Errorf("%w: facility_id required", ErrInvalidRequest)
	}
	if err := fs.repo.Add(ctx, nil, userID, facilityID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (fs *favoriteService) Remove(ctx context.Context, facilityID string) error {
	userID, err := userFromContext(ctx)
	if err != nil {
		return err
	}
	facilityID = strings.TrimSpace(facilityID)
	if facilityID == "" {
		return fmt.Errorf("%w: facility_id required", ErrInvalidRequest)
	}
	removed, err := fs.repo.Remove(ctx, nil, userID, facilityID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: favorite %s", ErrNotFound, facilityID)
	}
	return nil
}
