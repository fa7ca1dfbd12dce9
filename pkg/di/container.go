package di

import (
	"gorm.io/gorm"

	"taskhub/application/serviceimpl"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/infrastructure/messaging"
	"taskhub/infrastructure/postgres"
	redispkg "taskhub/infrastructure/redis"
	"taskhub/interfaces/api/handlers"
	"taskhub/pkg/config"
	"taskhub/pkg/logger"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional membership cache
	EventPublisher ports.EventPublisher

	// Repositories
	UserRepository    repositories.UserRepository
	TeamRepository    repositories.TeamRepository
	ProjectRepository repositories.ProjectRepository
	TaskRepository    repositories.TaskRepository
	CommentRepository repositories.CommentRepository

	// Services
	UserService    services.UserService
	TeamService    services.TeamService
	ProjectService services.ProjectService
	TaskService    services.TaskService
	CommentService services.CommentService

	natsPublisher *messaging.NATSEventPublisher
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	if err := postgres.Migrate(db); err != nil {
		return err
	}

	c.DB = db
	logger.Info("Database connected and migrated")

	// Redis and NATS are optional; the services degrade gracefully
	// when either is absent.
	if c.Config.Redis.URL != "" {
		client, err := redispkg.NewClient(redispkg.Config{
			URL:      c.Config.Redis.URL,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if err != nil {
			logger.Warn("Redis unavailable, membership cache disabled", "error", err)
		} else {
			c.RedisClient = client
		}
	}

	if c.Config.NATS.URL != "" {
		pub, err := messaging.NewNATSEventPublisher(c.Config.NATS.URL)
		if err != nil {
			logger.Warn("NATS unavailable, change events disabled", "error", err)
		} else {
			c.natsPublisher = pub
			c.EventPublisher = pub
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TeamRepository = postgres.NewTeamRepository(c.DB)
	c.ProjectRepository = postgres.NewProjectRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.CommentRepository = postgres.NewCommentRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.EventPublisher)
	c.TeamService = serviceimpl.NewTeamService(c.TeamRepository, c.ProjectRepository, c.RedisClient, c.EventPublisher)
	c.ProjectService = serviceimpl.NewProjectService(c.ProjectRepository, c.EventPublisher)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.EventPublisher)
	c.CommentService = serviceimpl.NewCommentService(c.CommentRepository, c.EventPublisher)
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:    c.UserService,
		TeamService:    c.TeamService,
		ProjectService: c.ProjectService,
		TaskService:    c.TaskService,
		CommentService: c.CommentService,
	}
}

func (c *Container) Cleanup() error {
	if c.natsPublisher != nil {
		c.natsPublisher.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
