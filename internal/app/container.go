package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kamalkharel2002/trackship/domain"
	"github.com/kamalkharel2002/trackship/internal/config"
	"github.com/kamalkharel2002/trackship/internal/infrastructure/auth"
	"github.com/kamalkharel2002/trackship/internal/infrastructure/database"
	"github.com/kamalkharel2002/trackship/internal/infrastructure/notifications"
	"github.com/kamalkharel2002/trackship/internal/infrastructure/otpstore"
	"github.com/kamalkharel2002/trackship/internal/infrastructure/repositories"
	"github.com/kamalkharel2002/trackship/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo  domain.UserRepository
	TokenRepo domain.RefreshTokenRepository
	OTPStore  domain.OTPStore

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	TokenHasher     domain.TokenHasher
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initOTPStore()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

// initOTPStore wires the configured OTP backend. Redis is only connected
// when the shared store is requested.
func (c *Container) initOTPStore() {
	if c.Config.OTPStore == "redis" {
		c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
		c.OTPStore = otpstore.NewRedisStore(c.RedisClient)
		return
	}
	c.OTPStore = otpstore.NewMemoryStore()
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.TokenRepo = repositories.NewRefreshTokenRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenHasher = auth.NewTokenHasher()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTAccessSecret,
		c.Config.JWTRefreshSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.NotificationSvc = notifications.NewSMTPService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)

	c.OTPSvc = services.NewOTPService(c.OTPStore, c.NotificationSvc, services.OTPConfig{
		TTL: c.Config.OTPTTL,
	})

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.TokenRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.TokenHasher,
		c.OTPSvc,
	)
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
