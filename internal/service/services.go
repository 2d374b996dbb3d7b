package service

import (
	"github.com/GIT-Saikat/Blog-Application/internal/config"
	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/store"
)

type Services struct {
	AuthService    AuthService
	PostService    PostService
	CommentService CommentService
	AppInfoService AppInfoService
}

// NewServices wires the business services over storages, each wrapped in
// its validation layer.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	credentials := NewCredentialService(cfg)

	return &Services{
		AuthService: NewAuthValidationService().Wrap(
			NewAuthService(storages.UserRepository, credentials, logger),
		),
		PostService: NewPostValidationService().Wrap(
			NewPostService(storages.PostRepository, logger),
		),
		CommentService: NewCommentValidationService().Wrap(
			NewCommentService(storages.CommentRepository, logger),
		),
		AppInfoService: appInfoService,
	}, nil
}
