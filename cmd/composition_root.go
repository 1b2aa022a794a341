package cmd

import (
	"context"
	"log/slog"

	httpin "adventure/internal/adapters/in/http"
	"adventure/internal/adapters/out/postgres"
	"adventure/internal/core/application/usecases/commands"
	"adventure/internal/core/application/usecases/queries"
	"adventure/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and jobs together. The list
// snapshot cache is shared by every reader and invalidated by every commit
// that wrote an item.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	itemsCache *queries.CachedListItemsQueryHandler
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	itemsCache := queries.NewCachedListItemsQueryHandler(queries.NewListItemsQueryHandler(gormDB))
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		itemsCache: itemsCache,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, itemsCache.Invalidate),
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddItemCommandHandler() *commands.AddItemCommandHandler {
	h := commands.NewAddItemCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateToggleItemCommandHandler() *commands.ToggleItemCommandHandler {
	h := commands.NewToggleItemCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateRenameItemCommandHandler() *commands.RenameItemCommandHandler {
	h := commands.NewRenameItemCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateDeleteItemCommandHandler() *commands.DeleteItemCommandHandler {
	h := commands.NewDeleteItemCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateReorderItemsCommandHandler() *commands.ReorderItemsCommandHandler {
	h := commands.NewReorderItemsCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateMoveItemCommandHandler() *commands.MoveItemCommandHandler {
	h := commands.NewMoveItemCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateNormalizeOrderCommandHandler() *commands.NormalizeOrderCommandHandler {
	h := commands.NewNormalizeOrderCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateListItemsQueryHandler() *queries.CachedListItemsQueryHandler {
	return c.itemsCache
}

func (c *CompositionRoot) CreateGetListSummaryQueryHandler() queries.GetListSummaryQueryHandler {
	return queries.NewGetListSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) commands() httpin.Commands {
	return httpin.Commands{
		AddItem:      c.CreateAddItemCommandHandler(),
		ToggleItem:   c.CreateToggleItemCommandHandler(),
		RenameItem:   c.CreateRenameItemCommandHandler(),
		DeleteItem:   c.CreateDeleteItemCommandHandler(),
		ReorderItems: c.CreateReorderItemsCommandHandler(),
		MoveItem:     c.CreateMoveItemCommandHandler(),
	}
}

// CreateRouter builds the echo instance serving the API and the pages.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	surpriseAt, err := c.config.SurpriseTime()
	if err != nil {
		return nil, err
	}

	cmds := c.commands()
	api := httpin.NewServer(cmds, httpin.Queries{
		Items:   c.CreateListItemsQueryHandler(),
		Summary: c.CreateGetListSummaryQueryHandler(),
	}, c.logger)

	views, err := httpin.NewViews(cmds, c.CreateListItemsQueryHandler(), httpin.ViewConfig{
		SurpriseAt: surpriseAt,
		SongURL:    c.config.SongURL,
	}, c.logger)
	if err != nil {
		return nil, err
	}

	return httpin.NewRouter(ctx, api, views, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateNormalizeOrderCommandHandler(), c.config.NormalizeSchedule, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
