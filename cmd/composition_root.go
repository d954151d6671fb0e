package cmd

import (
	"fmt"
	"log/slog"
	"sync"

	httpadapter "hiring/internal/adapters/in/http"
	"hiring/internal/adapters/out/gormstore"
	"hiring/internal/adapters/out/memory"
	"hiring/internal/core/application/services"
	"hiring/internal/core/application/usecases/commands"
	"hiring/internal/core/application/usecases/queries"
	"hiring/internal/core/ports"
	"hiring/internal/jobs"
	"hiring/internal/pkg/auth"
	"hiring/internal/pkg/mailer"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CompositionRoot builds the object graph. With a nil gormDB every
// repository is served by the in-memory store.
type CompositionRoot struct {
	configs     Config
	logger      *slog.Logger
	uowFactory  ports.UnitOfWorkFactory
	provisioner *gormstore.Provisioner

	serviceOnce sync.Once
	service     *services.JobService
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	root := &CompositionRoot{
		configs: configs,
		logger:  logger,
	}

	if gormDB == nil {
		root.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
		return root, nil
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	root.uowFactory = gormstore.NewGormUnitOfWorkFactory(gormDB)
	root.provisioner = gormstore.NewProvisioner(sqlDB, logger)
	return root, nil
}

// Provisioner is nil when the database is disabled.
func (c *CompositionRoot) Provisioner() *gormstore.Provisioner {
	return c.provisioner
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) jobRepository() ports.JobRepository {
	return c.uowFactory.Create().JobRepository()
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	var notifier ports.JobNotifier
	if m := c.CreateMailer(); m != nil {
		notifier = m
	}
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory(), notifier, commands.SystemClock, c.logger).
		WithNotifyTimeout(c.configs.MailTimeout)
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() commands.UpdateJobCommandHandler {
	return commands.NewUpdateJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateDeleteJobCommandHandler() commands.DeleteJobCommandHandler {
	return commands.NewDeleteJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateSeedDefaultJobsCommandHandler() commands.SeedDefaultJobsCommandHandler {
	return commands.NewSeedDefaultJobsCommandHandler(c.jobUoWFactory(), commands.SystemClock, c.logger)
}

func (c *CompositionRoot) CreateListJobsQueryHandler() queries.ListJobsQueryHandler {
	return queries.NewListJobsQueryHandler(c.jobRepository())
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.jobRepository())
}

func (c *CompositionRoot) CreateGetFilterOptionsQueryHandler() queries.GetFilterOptionsQueryHandler {
	return queries.NewGetFilterOptionsQueryHandler(c.jobRepository())
}

// JobService is built once and shared by the HTTP server and startup seeding.
func (c *CompositionRoot) JobService() *services.JobService {
	c.serviceOnce.Do(func() {
		c.service = services.NewJobService(services.Handlers{
			CreateJob:        c.CreateCreateJobCommandHandler(),
			UpdateJob:        c.CreateUpdateJobCommandHandler(),
			DeleteJob:        c.CreateDeleteJobCommandHandler(),
			SeedJobs:         c.CreateSeedDefaultJobsCommandHandler(),
			ListJobs:         c.CreateListJobsQueryHandler(),
			GetJob:           c.CreateGetJobQueryHandler(),
			GetFilterOptions: c.CreateGetFilterOptionsQueryHandler(),
		}, c.logger)
	})
	return c.service
}

// CreateMailer returns nil when no recipient is configured or the client
// cannot be built; job creation then skips notices.
func (c *CompositionRoot) CreateMailer() *mailer.Mailer {
	cfg := c.configs.Mailer()
	if len(cfg.NotifyTo) == 0 {
		return nil
	}

	m, err := mailer.New(cfg, c.logger)
	if err != nil {
		c.logger.Warn("Mailer disabled", "error", err)
		return nil
	}
	return m
}

func (c *CompositionRoot) CreateAuthenticator() *auth.AdminAuthenticator {
	if c.configs.AdminPasswordHash == "" {
		c.logger.Warn("ADMIN_PASSWORD_HASH is not set, job writes are not protected")
	}
	return auth.NewAdminAuthenticator(
		c.configs.AdminUsername,
		c.configs.AdminPasswordHash,
		auth.NewPasswordEncoder(bcrypt.DefaultCost),
		auth.NewTokenService(c.configs.JWTSecret, c.configs.JWTTTL),
	)
}

// CreateJobManager schedules the database health probe when a database is used.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.provisioner == nil {
		return jobs.NewJobManager()
	}
	return jobs.NewJobManager(
		jobs.NewDatabaseHealthJob(c.provisioner, c.configs.DBHealthCron, c.logger),
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	var health httpadapter.AvailabilityChecker
	if c.provisioner != nil {
		health = c.provisioner
	}
	return httpadapter.NewServer(c.JobService(), c.CreateAuthenticator(), health)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpadapter.NewRouter(httpadapter.RouterConfig{
		AllowedOrigins: c.configs.CORSAllowedOrigins,
		Logger:         c.logger,
	}, c.CreateHTTPServer())
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}
