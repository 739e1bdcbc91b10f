package imagesearch

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/yanqian/sunside/pkg/errors"
)

// ErrMissingCredentials is returned by clients that have no API key configured.
var ErrMissingCredentials = errors.New("image search credentials not configured")

// Service looks up landmark images. Upstream trouble never fails the caller.
type Service interface {
	Search(ctx context.Context, query string) (Response, error)
}

// Client queries the photo provider.
type Client interface {
	SearchPhotos(ctx context.Context, query string, perPage int) ([]Image, error)
}

type service struct {
	cfg    Config
	client Client
	store  Store
	group  singleflight.Group
	logger *slog.Logger
}

// NewService wires the lookup service.
func NewService(cfg Config, client Client, store Store, logger *slog.Logger) Service {
	if cfg.PerPage <= 0 {
		cfg.PerPage = 5
	}
	return &service{
		cfg:    cfg,
		client: client,
		store:  store,
		logger: logger.With("component", "imagesearch.service"),
	}
}

func (s *service) Search(ctx context.Context, query string) (Response, error) {
	key := normalizeQuery(query)
	if key == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "query parameter is required", nil)
	}

	if images, ok, err := s.store.Get(ctx, key); err != nil {
		s.logger.Warn("image cache read failed", "query", key, "error", err)
	} else if ok {
		return Response{Images: nonNil(images)}, nil
	}

	// The flight outlives any single caller; the client timeout bounds it.
	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(key, func() (any, error) {
		images, err := s.client.SearchPhotos(flightCtx, key, s.cfg.PerPage)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "image search failed", err)
		}
		if err := s.store.Save(flightCtx, key, images, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("image cache write failed", "query", key, "error", err)
		}
		return images, nil
	})
	if err != nil {
		if errors.Is(err, ErrMissingCredentials) {
			s.logger.Warn("image search disabled, returning no images", "query", key)
		} else {
			s.logger.Warn("image search degraded to no images", "query", key, "error", err)
		}
		return Response{Images: []Image{}}, nil
	}
	s.logger.Debug("image search completed", "query", key, "shared", shared)
	return Response{Images: nonNil(v.([]Image))}, nil
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

func nonNil(images []Image) []Image {
	if images == nil {
		return []Image{}
	}
	return images
}
