package services

import (
	"context"
	"strings"

	"wayfarer/pkg/logger"
	"wayfarer/pkg/pexels"
	"wayfarer/pkg/utils"
)

type PhotoServiceInterface interface {
	FindCoverImage(ctx context.Context, destination string) (string, error)
}

// PhotoService wraps the stock-photo collaborator. Nothing here is load
// bearing: a trip without a cover image is a normal state.
type PhotoService struct {
	client pexels.ClientInterface
}

func NewPhotoService(client pexels.ClientInterface) PhotoServiceInterface {
	return &PhotoService{client: client}
}

func (p *PhotoService) FindCoverImage(ctx context.Context, destination string) (string, error) {
	if strings.TrimSpace(destination) == "" {
		return "", utils.ErrInvalidInput
	}

	imageURL, err := p.client.SearchDestinationImage(ctx, pexels.BuildSearchQuery(destination))
	if err != nil {
		logger.GetLogger().Warnw("photo search failed", "destination", destination, "error", err)
		return "", utils.ErrPhotoUnavailable
	}
	return imageURL, nil
}
