package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/RamiSparda/AppMovilApp/internal/config"
	"github.com/RamiSparda/AppMovilApp/internal/handler"
	"github.com/RamiSparda/AppMovilApp/internal/infra/db"
	infraRepo "github.com/RamiSparda/AppMovilApp/internal/infra/repository"
	repo "github.com/RamiSparda/AppMovilApp/internal/repository"
	"github.com/RamiSparda/AppMovilApp/internal/server"
	"github.com/RamiSparda/AppMovilApp/internal/usecase"
)

func main() {
	// .envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// カート永続化バックエンド
	var kv repo.KVRepository
	switch cfg.CartBackend {
	case config.CartBackendRedis:
		client, err := db.ConnectRedis(cfg)
		if err != nil {
			panic(err)
		}
		kv = infraRepo.NewKVRedisRepository(client)

	case config.CartBackendPostgres:
		gormDB, err := db.Connect(cfg)
		if err != nil {
			panic(err)
		}
		if err := gormDB.AutoMigrate(&infraRepo.CartSnapshotRow{}); err != nil {
			panic(err)
		}
		kv = infraRepo.NewKVGormRepository(gormDB)

	default:
		log.Printf("[main] cart backend: memory (not persisted across restarts)")
		kv = infraRepo.NewKVMemoryRepository()
	}

	// カタログ（Firestore未設定ならサンプルカタログ）
	var productRepo repo.ProductRepository
	if cfg.FirestoreProjectID != "" {
		fs, err := db.ConnectFirestore(context.Background(), cfg)
		if err != nil {
			panic(err)
		}
		defer fs.Close()
		productRepo = infraRepo.NewCatalogFirestoreRepository(fs, cfg.FirestoreProductCol)
	} else {
		log.Printf("[main] FIRESTORE_PROJECT_ID not set, using sample catalog")
		productRepo = infraRepo.NewCatalogMemoryRepository()
	}

	outfitRepo := infraRepo.NewOutfitMemoryRepository()

	// Store / Usecase生成
	cartStore := usecase.NewCartStore(kv)
	defer cartStore.Close()

	productUC := usecase.NewProductUsecase(productRepo)
	outfitUC := usecase.NewOutfitUsecase(outfitRepo, cartStore)

	// Handler生成
	cartH := handler.NewCartHandler(cartStore)
	productH := handler.NewProductHandler(productUC)
	outfitH := handler.NewOutfitHandler(outfitUC)
	accountH := handler.NewAccountHandler()

	// Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cartH, productH, outfitH, accountH); err != nil {
		panic(err)
	}
}
