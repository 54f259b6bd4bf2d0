package main

import (
	"context"
	"log/slog"
	"os"

	"campus/config"
	"campus/internal/delivery"
	"campus/internal/delivery/http"
	"campus/internal/delivery/http/middleware"
	"campus/internal/delivery/http/router/handler"
	"campus/internal/delivery/worker"
	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/infra/auth"
	logs "campus/internal/infra/log"
	"campus/internal/infra/persistence/memory"
	"campus/internal/infra/persistence/postgres"
	"campus/internal/infra/storage"
	"campus/internal/usecase"
	"campus/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectContent(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			impl.SeedAdminUser,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.NewBucket,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewAdmissionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			storage.NewBlobStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAdmissionService,
		),
	)
}

// injectContent wires one store, usecase and handler per content collection.
// The store backend is selected once at startup from config.
func injectContent() fx.Option {
	return fx.Options(
		provideContent[entity.Project](true),
		provideContent[entity.NewsItem](true),
		provideContent[entity.Event](true),
		provideContent[entity.Course](true),
		provideContent[entity.FacultyMember](true),
		provideContent[entity.Partnership](true),
		provideContent[entity.Testimonial](true),
		provideContent[entity.ContactMessage](false),
		provideContent[entity.SiteSetting](false),
		provideContent[entity.FeatureFlag](false),
	)
}

func provideContent[T any](filterActive bool) fx.Option {
	return fx.Provide(
		newContentStore[T],
		impl.NewContentService[T],
		func(uc usecase.ContentUsecase[T], logger *slog.Logger) *handler.ContentHandler[T] {
			return handler.NewContentHandler(uc, filterActive, logger)
		},
	)
}

func newContentStore[T any](cfg *config.Config, db *gorm.DB) repository.ContentStore[T] {
	if cfg.Content.Driver == "memory" {
		return memory.NewContentStore[T]()
	}

	return postgres.NewContentStore[T](db)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdmissionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSessionSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
