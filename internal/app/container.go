package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/twofasvc/domain"
	"github.com/you/twofasvc/internal/config"
	"github.com/you/twofasvc/internal/infrastructure/auth"
	"github.com/you/twofasvc/internal/infrastructure/database"
	"github.com/you/twofasvc/internal/infrastructure/qr"
	"github.com/you/twofasvc/internal/infrastructure/repositories"
	"github.com/you/twofasvc/internal/logger"
	"github.com/you/twofasvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Log    *logger.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo    domain.UserRepository
	PendingRepo domain.PendingAuthRepository
	SessionRepo domain.SessionRepository

	// Services
	PasswordSvc domain.PasswordService
	TOTPSvc     domain.TOTPService
	TokenSvc    domain.TokenService
	QRSvc       domain.QRService
	AuthSvc     domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, log *logger.Logger) (*Container, error) {
	if log == nil {
		log = logger.Nop()
	}
	container := &Container{Config: cfg, Log: log}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()

	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DBDriver, c.Config.DSN)
	if err != nil {
		return err
	}

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.PendingRepo = repositories.NewPendingAuthRepository(c.RedisClient, c.Config.PendingTTL)
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.SessionTTL)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)
	c.TOTPSvc = auth.NewTOTPService(c.Config.TOTPIssuer)
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.SessionTTL)
	c.QRSvc = qr.NewQRService(256)

	authSvc, err := services.NewAuthService(
		c.UserRepo,
		c.PendingRepo,
		c.SessionRepo,
		c.PasswordSvc,
		c.TOTPSvc,
		c.TokenSvc,
		services.AuthConfig{
			PendingTTL: c.Config.PendingTTL,
			SessionTTL: c.Config.SessionTTL,
		},
		c.Log,
	)
	if err != nil {
		return err
	}
	c.AuthSvc = authSvc

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
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
