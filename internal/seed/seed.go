// Package seed loads the demo marketplace dataset. It is what the storefront
// shows on a fresh database: eight categories, a dozen approved vendors, a
// full product catalog and a working vendor account (vendor@test.com).
package seed

import (
	"fmt"
	"time"

	"github.com/markethub-api/internal/constants"
	"github.com/markethub-api/internal/logger"
	"github.com/markethub-api/internal/models"

	"gorm.io/gorm"
)

// Run inserts the demo dataset. It is a no-op when users already exist, so
// calling it on every startup is safe.
func Run(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if userCount > 0 {
		logger.Debugw("seed_skip_existing_data", "users", userCount)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categoryIDs, err := seedCategories(tx)
		if err != nil {
			return err
		}
		user, vendor, err := seedDemoVendor(tx)
		if err != nil {
			return err
		}
		vendors, err := seedVendors(tx, user.ID)
		if err != nil {
			return err
		}
		if err := seedProducts(tx, vendor, vendors, categoryIDs); err != nil {
			return err
		}
		if err := seedOrders(tx, user.ID, vendor.ID); err != nil {
			return err
		}
		if err := seedMessages(tx, vendor.ID); err != nil {
			return err
		}
		if err := seedSuppliers(tx, vendor.ID); err != nil {
			return err
		}
		logger.Infow("seed_completed", "demo_user", user.Email)
		return nil
	})
}

func seedCategories(tx *gorm.DB) (map[string]uint, error) {
	categories := []models.Category{
		{Name: "Electronics", Icon: "laptop", Slug: "electronics"},
		{Name: "Fashion", Icon: "tshirt", Slug: "fashion"},
		{Name: "Home & Garden", Icon: "home", Slug: "home-garden"},
		{Name: "Sports", Icon: "gamepad", Slug: "sports"},
		{Name: "Books", Icon: "book", Slug: "books"},
		{Name: "Beauty", Icon: "sparkles", Slug: "beauty"},
		{Name: "Toys", Icon: "gamepad2", Slug: "toys"},
		{Name: "Automotive", Icon: "car", Slug: "automotive"},
	}
	ids := make(map[string]uint, len(categories))
	for i := range categories {
		if err := tx.Create(&categories[i]).Error; err != nil {
			return nil, fmt.Errorf("seed: category %s: %w", categories[i].Slug, err)
		}
		ids[categories[i].Slug] = categories[i].ID
	}
	return ids, nil
}

func seedDemoVendor(tx *gorm.DB) (*models.User, *models.Vendor, error) {
	// The demo password is stored unhashed on purpose; login falls back to a
	// constant-time plain comparison when auth.allow_plaintext_fallback is on.
	user := &models.User{
		Username:  "testvendor",
		Email:     "vendor@test.com",
		Password:  "password123",
		FirstName: "John",
		LastName:  "Doe",
		IsVendor:  true,
	}
	if err := tx.Create(user).Error; err != nil {
		return nil, nil, fmt.Errorf("seed: demo user: %w", err)
	}
	vendor := &models.Vendor{
		UserID:           user.ID,
		StoreName:        "TechGear Solutions",
		StoreDescription: strp("Premium electronics and gadgets"),
		Rating:           models.MustRating("4.8"),
		TotalSales:       1250,
		IsApproved:       true,
	}
	if err := tx.Create(vendor).Error; err != nil {
		return nil, nil, fmt.Errorf("seed: demo vendor: %w", err)
	}
	return user, vendor, nil
}

func seedVendors(tx *gorm.DB, ownerID uint) ([]models.Vendor, error) {
	vendors := []models.Vendor{
		{StoreName: "Fashion Forward", StoreDescription: strp("Trendy fashion and accessories for modern lifestyle"), Rating: models.MustRating("4.6"), TotalSales: 890},
		{StoreName: "Home & Garden Plus", StoreDescription: strp("Everything for your home and garden needs"), Rating: models.MustRating("4.3"), TotalSales: 645},
		{StoreName: "Sports World", StoreDescription: strp("Premium sports equipment and athletic wear"), Rating: models.MustRating("4.7"), TotalSales: 1150},
		{StoreName: "Beauty Boutique", StoreDescription: strp("Natural and organic beauty products"), Rating: models.MustRating("4.5"), TotalSales: 720},
		{StoreName: "Book Haven", StoreDescription: strp("Rare books, bestsellers, and educational materials"), Rating: models.MustRating("4.8"), TotalSales: 580},
		{StoreName: "Toy Paradise", StoreDescription: strp("Safe and fun toys for children of all ages"), Rating: models.MustRating("4.4"), TotalSales: 950},
		{StoreName: "Auto Parts Pro", StoreDescription: strp("Quality automotive parts and accessories"), Rating: models.MustRating("4.6"), TotalSales: 1020},
		{StoreName: "Gadget Galaxy", StoreDescription: strp("Latest gadgets and tech accessories"), Rating: models.MustRating("4.7"), TotalSales: 1340},
		{StoreName: "Eco Living", StoreDescription: strp("Sustainable and eco-friendly products"), Rating: models.MustRating("4.9"), TotalSales: 430},
		{StoreName: "Kitchen Masters", StoreDescription: strp("Professional cooking tools and kitchenware"), Rating: models.MustRating("4.5"), TotalSales: 780},
	}
	for i := range vendors {
		vendors[i].UserID = ownerID
		vendors[i].IsApproved = true
		if err := tx.Create(&vendors[i]).Error; err != nil {
			return nil, fmt.Errorf("seed: vendor %s: %w", vendors[i].StoreName, err)
		}
	}
	return vendors, nil
}

type productSeed struct {
	vendorID      uint
	category      string
	name          string
	description   string
	price         string
	originalPrice string
	stock         int
	imageURL      string
	rating        string
	reviewCount   int
}

func seedProducts(tx *gorm.DB, demo *models.Vendor, vendors []models.Vendor, categoryIDs map[string]uint) error {
	fashion := vendors[0].ID
	home := vendors[1].ID
	sports := vendors[2].ID
	beauty := vendors[3].ID

	seeds := []productSeed{
		{demo.ID, "electronics", "Premium Wireless Headphones", "High-quality wireless headphones with noise cancellation", "79.99", "99.99", 50, "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.5", 124},
		{demo.ID, "electronics", "Ultra-thin Laptop Pro", "Professional laptop with latest specs", "899.99", "", 25, "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.7", 156},
		{demo.ID, "electronics", "Smartphone X Pro", "Latest smartphone with amazing camera", "599.99", "699.99", 75, "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.8", 203},
		{demo.ID, "electronics", "Wireless Gaming Mouse", "Professional gaming mouse with RGB lighting", "49.99", "", 120, "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.4", 89},
		{fashion, "fashion", "Designer Jeans", "Premium denim jeans with perfect fit", "129.99", "159.99", 40, "https://images.unsplash.com/photo-1542272604-787c3835535d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.6", 67},
		{fashion, "fashion", "Summer Dress", "Elegant summer dress for all occasions", "89.99", "", 60, "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.7", 112},
		{fashion, "fashion", "Leather Jacket", "Genuine leather jacket for style", "199.99", "249.99", 25, "https://images.unsplash.com/photo-1551028719-00167b16eac5?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.5", 45},
		{home, "home-garden", "Modern Coffee Table", "Stylish coffee table for your living room", "299.99", "", 15, "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.3", 34},
		{home, "home-garden", "Garden Tool Set", "Complete set of garden tools", "79.99", "99.99", 35, "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.4", 78},
		{demo.ID, "sports", "Running Shoes", "Professional running shoes for athletes", "149.99", "179.99", 80, "https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.8", 167},
		{sports, "sports", "Yoga Mat", "Premium non-slip yoga mat", "39.99", "", 90, "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.5", 92},
		{beauty, "books", "Programming Guide", "Complete guide to modern programming", "29.99", "", 100, "https://images.unsplash.com/photo-1532012197267-da84d127e765?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.7", 145},
		{sports, "books", "Science Fiction Novel", "Epic space adventure story", "19.99", "24.99", 65, "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.4", 89},
		{demo.ID, "electronics", "4K Smart TV", "55-inch 4K Ultra HD Smart TV with HDR", "449.99", "599.99", 20, "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.6", 178},
		{sports, "electronics", "Bluetooth Speaker", "Portable waterproof Bluetooth speaker", "59.99", "", 85, "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.3", 142},
		{demo.ID, "electronics", "Mechanical Keyboard", "RGB backlit mechanical gaming keyboard", "89.99", "119.99", 45, "https://images.unsplash.com/photo-1541140532154-b024d705b90a?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.7", 156},
		{beauty, "electronics", "Wireless Charger", "Fast wireless charging pad for all devices", "29.99", "", 95, "https://images.unsplash.com/photo-1580910051074-3eb694886505?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.2", 73},
		{sports, "fashion", "Classic T-Shirt", "Premium cotton classic fit t-shirt", "24.99", "", 150, "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.5", 234},
		{sports, "fashion", "Winter Coat", "Warm winter coat for cold weather", "159.99", "199.99", 30, "https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.6", 98},
		{beauty, "fashion", "Sneakers Collection", "Trendy casual sneakers for everyday wear", "79.99", "", 75, "https://images.unsplash.com/photo-1549298916-b41d501d3772?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.4", 187},
		{sports, "fashion", "Designer Handbag", "Elegant leather handbag for professionals", "199.99", "249.99", 25, "https://images.unsplash.com/photo-1584917865442-de89df76afd3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.8", 156},
		{beauty, "home-garden", "LED Floor Lamp", "Modern LED floor lamp with dimmer", "89.99", "", 40, "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.3", 67},
		{demo.ID, "home-garden", "Kitchen Knife Set", "Professional chef knife set with block", "129.99", "169.99", 35, "https://images.unsplash.com/photo-1593618998160-e34014e67546?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.7", 123},
		{beauty, "home-garden", "Plant Collection", "Set of 3 indoor plants for home decoration", "49.99", "", 60, "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.5", 145},
		{sports, "home-garden", "Throw Pillows Set", "Decorative throw pillows for sofa", "39.99", "", 85, "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.2", 92},
		{demo.ID, "sports", "Basketball", "Official size basketball for outdoor play", "34.99", "", 70, "https://images.unsplash.com/photo-1546519638-68e109498ffc?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.4", 134},
		{sports, "sports", "Fitness Tracker", "Smart fitness tracker with heart rate monitor", "99.99", "129.99", 55, "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.6", 189},
		{beauty, "sports", "Dumbbells Set", "Adjustable dumbbells for home gym", "149.99", "", 25, "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.5", 78},
		{demo.ID, "sports", "Tennis Racket", "Professional tennis racket for competitive play", "119.99", "149.99", 30, "https://images.unsplash.com/photo-1544718187-0275d7c35ba9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.7", 156},
		{beauty, "books", "Cookbook Collection", "International recipes cookbook", "34.99", "", 45, "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.6", 201},
		{demo.ID, "books", "Business Strategy Guide", "Essential guide for business success", "39.99", "49.99", 65, "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.5", 178},
		{sports, "books", "Art & Design Book", "Visual guide to modern art and design", "44.99", "", 35, "https://images.unsplash.com/photo-1532012197267-da84d127e765?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.8", 87},
		{sports, "beauty", "Skincare Set", "Complete skincare routine for glowing skin", "89.99", "109.99", 40, "https://images.unsplash.com/photo-1556228720-195a672e8a03?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.7", 156},
		{beauty, "beauty", "Professional Makeup Kit", "Complete makeup kit for professionals", "129.99", "", 25, "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.8", 198},
		{sports, "beauty", "Hair Care Bundle", "Shampoo, conditioner and styling products", "59.99", "79.99", 60, "https://images.unsplash.com/photo-1571781926291-c477ebfd024b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.5", 143},
		{beauty, "toys", "Building Blocks Set", "Educational building blocks for kids", "39.99", "", 85, "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.6", 267},
		{demo.ID, "toys", "Remote Control Car", "High-speed remote control racing car", "79.99", "99.99", 45, "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.4", 124},
		{sports, "toys", "Board Game Collection", "Classic board games for family fun", "49.99", "", 55, "https://images.unsplash.com/photo-1606092195730-5d7b9af1efc5?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.7", 189},
		{demo.ID, "automotive", "Car Phone Mount", "Universal car phone holder for dashboard", "24.99", "", 120, "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.3", 234},
		{beauty, "automotive", "Car Care Kit", "Complete car cleaning and maintenance kit", "69.99", "89.99", 35, "https://images.unsplash.com/photo-1485291571150-772bcfc10da5?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.5", 167},
		{demo.ID, "automotive", "Dash Camera", "HD dash camera with night vision", "149.99", "", 25, "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300", "4.6", 145},
	}

	for _, s := range seeds {
		product := models.Product{
			VendorID:    s.vendorID,
			CategoryID:  categoryIDs[s.category],
			Name:        s.name,
			Description: strp(s.description),
			Price:       models.MustMoney(s.price),
			Stock:       s.stock,
			ImageURL:    strp(s.imageURL),
			IsActive:    true,
			Rating:      models.MustRating(s.rating),
			ReviewCount: s.reviewCount,
		}
		if s.originalPrice != "" {
			op := models.MustMoney(s.originalPrice)
			product.OriginalPrice = &op
		}
		if err := tx.Create(&product).Error; err != nil {
			return fmt.Errorf("seed: product %s: %w", s.name, err)
		}
	}
	return nil
}

func seedOrders(tx *gorm.DB, userID, vendorID uint) error {
	now := time.Now()
	orders := []models.Order{
		{UserID: userID, VendorID: vendorID, Status: constants.OrderStatusCompleted, TotalAmount: models.MustMoney("129.98"), ShippingAddress: "123 Main St, New York, NY 10001", CreatedAt: now.Add(-2 * 24 * time.Hour)},
		{UserID: userID, VendorID: vendorID, Status: constants.OrderStatusProcessing, TotalAmount: models.MustMoney("79.99"), ShippingAddress: "456 Oak Ave, Los Angeles, CA 90210", CreatedAt: now.Add(-24 * time.Hour)},
		{UserID: userID, VendorID: vendorID, Status: constants.OrderStatusShipped, TotalAmount: models.MustMoney("249.97"), ShippingAddress: "789 Pine Rd, Chicago, IL 60601", CreatedAt: now.Add(-5 * time.Hour)},
	}
	for i := range orders {
		if err := tx.Create(&orders[i]).Error; err != nil {
			return fmt.Errorf("seed: order: %w", err)
		}
	}
	return nil
}

func seedMessages(tx *gorm.DB, vendorID uint) error {
	now := time.Now()
	messages := []models.Message{
		{
			VendorID:    vendorID,
			SenderName:  "Anna Smirnova",
			SenderEmail: "anna.smirnova@email.ru",
			Subject:     "Question about headphones",
			Message:     "Hello! I'd like to know whether the Premium Wireless Headphones are in stock, and what warranty comes with them?",
			IsRead:      false,
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		{
			VendorID:    vendorID,
			SenderName:  "Dmitry Petrov",
			SenderEmail: "dmitry.petrov@company.com",
			Subject:     "Wholesale inquiry",
			Message:     "Good afternoon! Our company is interested in buying your products wholesale. Could you share a price list with bulk pricing?",
			IsRead:      true,
			CreatedAt:   now.Add(-24 * time.Hour),
		},
		{
			VendorID:    vendorID,
			SenderName:  "Elena Kozlova",
			SenderEmail: "elena.kozlova@gmail.com",
			Subject:     "Problem with my order",
			Message:     "Hello! I have a problem with order #12345. The item arrived damaged. How can I arrange a return or exchange?",
			IsRead:      false,
			CreatedAt:   now.Add(-30 * time.Minute),
		},
	}
	for i := range messages {
		if err := tx.Create(&messages[i]).Error; err != nil {
			return fmt.Errorf("seed: message: %w", err)
		}
	}
	return nil
}

func seedSuppliers(tx *gorm.DB, vendorID uint) error {
	now := time.Now()
	suppliers := []models.Supplier{
		{
			VendorID:  vendorID,
			Name:      "Electronics Wholesale Ltd",
			Contact:   "John Smith",
			Email:     "john@electronics-wholesale.com",
			Phone:     strp("+1 (555) 123-4567"),
			Address:   strp("123 Business St, Tech City, TC 12345"),
			Products:  strp("Smartphones, Laptops, Tablets"),
			Status:    constants.SupplierStatusActive,
			CreatedAt: now.Add(-10 * 24 * time.Hour),
		},
		{
			VendorID:  vendorID,
			Name:      "Global Components Inc",
			Contact:   "Sarah Johnson",
			Email:     "sarah@globalcomponents.com",
			Phone:     strp("+1 (555) 987-6543"),
			Address:   strp("456 Supply Ave, Component City, CC 67890"),
			Products:  strp("Phone Accessories, Charging Cables"),
			Status:    constants.SupplierStatusActive,
			CreatedAt: now.Add(-7 * 24 * time.Hour),
		},
		{
			VendorID:  vendorID,
			Name:      "Mobile Tech Distributors",
			Contact:   "Mike Chen",
			Email:     "mike@mobiletech.com",
			Phone:     strp("+1 (555) 456-7890"),
			Address:   strp("789 Tech Park Dr, Silicon Valley, CA 94088"),
			Products:  strp("Wireless Headphones, Smart Watches, Tablets"),
			Status:    constants.SupplierStatusActive,
			CreatedAt: now.Add(-3 * 24 * time.Hour),
		},
	}
	for i := range suppliers {
		if err := tx.Create(&suppliers[i]).Error; err != nil {
			return fmt.Errorf("seed: supplier %s: %w", suppliers[i].Name, err)
		}
	}
	return nil
}

func strp(s string) *string {
	return &s
}
