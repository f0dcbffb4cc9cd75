// Package provider wires repositories and services into a single container.
package provider

import (
	"github.com/markethub-api/internal/cache"
	"github.com/markethub-api/internal/config"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/models"
	"github.com/markethub-api/internal/queue"
	"github.com/markethub-api/internal/repository"
	"github.com/markethub-api/internal/service"
)

// Container is the dependency injection container.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	VendorRepo   repository.VendorRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	OrderRepo    repository.OrderRepository
	ReviewRepo   repository.ReviewRepository
	CartRepo     repository.CartRepository
	FavoriteRepo repository.FavoriteRepository
	MessageRepo  repository.MessageRepository
	SupplierRepo repository.SupplierRepository

	// Services
	UserAuthService *service.UserAuthService
	VendorService   *service.VendorService
	CategoryService *service.CategoryService
	ProductService  *service.ProductService
	OrderService    *service.OrderService
	CartService     *service.CartService
	FavoriteService *service.FavoriteService
	ReviewService   *service.ReviewService
	MessageService  *service.MessageService
	SupplierService *service.SupplierService
	EmailService    *service.EmailService
	CaptchaService  *service.CaptchaService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.VendorRepo = repository.NewVendorRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.FavoriteRepo = repository.NewFavoriteRepository(db)
	c.MessageRepo = repository.NewMessageRepository(db)
	c.SupplierRepo = repository.NewSupplierRepository(db)
}

func (c *Container) initServices() {
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.VendorService = service.NewVendorService(c.VendorRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.QueueClient)
	c.CartService = service.NewCartService(c.CartRepo)
	c.FavoriteService = service.NewFavoriteService(c.FavoriteRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo)
	c.MessageService = service.NewMessageService(c.MessageRepo, c.QueueClient)
	c.SupplierService = service.NewSupplierService(c.SupplierRepo)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
}

// Close releases external connections held by the container.
func (c *Container) Close() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
}
