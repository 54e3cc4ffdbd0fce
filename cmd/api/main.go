package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/danishhshk/FreshBasket/internal/config"
	"github.com/danishhshk/FreshBasket/internal/domain/model"
	"github.com/danishhshk/FreshBasket/internal/handler"
	"github.com/danishhshk/FreshBasket/internal/infra/db"
	infraRepo "github.com/danishhshk/FreshBasket/internal/infra/repository"
	"github.com/danishhshk/FreshBasket/internal/infra/storage"
	"github.com/danishhshk/FreshBasket/internal/server"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

func (i *jwtIssuer) Issue(userID int64, isAdmin bool, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)

	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(userID, 10),
		"is_admin": isAdmin,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くても起動する（本番は環境変数で渡す）
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal(err)
	}

	//サブコマンド（seed / create-admin）
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "seed":
			if err := seedProducts(gormDB); err != nil {
				log.Fatal(err)
			}
			log.Println("seed done")
			return
		case "create-admin":
			if err := createAdmin(gormDB, os.Args[2:]); err != nil {
				log.Fatal(err)
			}
			log.Println("admin created")
			return
		default:
			log.Fatalf("unknown command: %s", os.Args[1])
		}
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()
	issuer := &jwtIssuer{secret: []byte(cfg.JWTSecret), ttl: cfg.SessionTTL}
	images := storage.NewLocalImageStorage(cfg.UploadDir, cfg.UploadBaseURL)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, hasher, verifier, issuer)
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartItemRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, images)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager)
	adminUserUC := usecase.NewAdminUserUsecase(userRepo)
	adminDashboardUC := usecase.NewAdminDashboardUsecase(userRepo, productRepo, orderRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:           handler.NewAuthHandler(authUC, cfg),
		Product:        handler.NewProductHandler(catalogUC),
		Cart:           handler.NewCartHandler(cartUC, cfg),
		Order:          handler.NewOrderHandler(orderUC, cfg),
		AdminProduct:   handler.NewAdminProductHandler(adminProductUC, cfg),
		AdminOrder:     handler.NewAdminOrderHandler(adminOrderUC, cfg),
		AdminUser:      handler.NewAdminUserHandler(adminUserUC, cfg),
		AdminDashboard: handler.NewAdminDashboardHandler(adminDashboardUC, cfg),
	}

	//Server起動
	if err := server.Start(cfg, handlers); err != nil {
		log.Fatal(err)
	}
}

// 初期データ（既に商品がある場合は何もしない）
func seedProducts(gormDB *gorm.DB) error {
	ctx := context.Background()
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	count, err := productRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("products already exist, skipping seed")
		return nil
	}

	products := []model.Product{
		{Name: "Red Apples", Description: "Crisp and sweet red apples, sold per kg.", Category: "fruit", Price: 5.99, Stock: 50, IsAvailable: true},
		{Name: "Bananas", Description: "Ripe yellow bananas, sold per bunch.", Category: "fruit", Price: 3.99, Stock: 100, IsAvailable: true},
		{Name: "Carrots", Description: "Fresh crunchy carrots, sold per kg.", Category: "vegetable", Price: 4.99, Stock: 80, IsAvailable: true},
		{Name: "Tomatoes", Description: "Vine-ripened tomatoes, sold per kg.", Category: "vegetable", Price: 6.99, Stock: 60, IsAvailable: true},
		{Name: "Strawberries", Description: "Sweet strawberries, sold per punnet.", Category: "fruit", Price: 7.99, Stock: 40, IsAvailable: true},
		{Name: "Lettuce", Description: "Crisp iceberg lettuce, sold per head.", Category: "vegetable", Price: 3.49, Stock: 75, IsAvailable: true},
	}

	for _, p := range products {
		if _, err := productRepo.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// 管理者作成: api create-admin <username> <email> <password>
func createAdmin(gormDB *gorm.DB, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: create-admin <username> <email> <password>")
	}

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	hasher := usecase.NewBcryptPasswordHasher(12)

	hash, err := hasher.Hash(args[2])
	if err != nil {
		return err
	}

	u := model.User{
		Username:     args[0],
		Email:        args[1],
		PasswordHash: hash,
		IsAdmin:      true,
	}
	return userRepo.Create(context.Background(), &u)
}
