package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"jobhub/api/middleware"
	"jobhub/api/routes"
	"jobhub/config"
	"jobhub/db"
	"jobhub/services"
	"jobhub/sharding"

	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	err := config.LoadConfig(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	log.Println("Starting server...")

	err = db.ConnectDB()
	if err != nil {
		panic("Failed to connect to the database: " + err.Error())
	}

	// Redis и RabbitMQ наблюдательные, без них сервис работает
	if err := services.InitRedis(); err != nil {
		log.Printf("Warning: Redis initialization failed: %v", err)
	}

	var emitter sharding.MigrationEmitter
	if err := services.InitRabbitMQ(); err != nil {
		log.Printf("Warning: RabbitMQ initialization failed: %v", err)
	} else {
		emitter = services.RabbitMigrationEmitter{}
		if err := services.StartMigrationAuditConsumer(context.Background(), "shard_migration_audit"); err != nil {
			log.Printf("Warning: migration audit consumer failed to start: %v", err)
		}
	}

	// Сломанная топология - фатальная ошибка конфигурации, с ней не стартуем
	if err := services.InitShardRouter(emitter); err != nil {
		panic("Failed to initialize shard router: " + err.Error())
	}

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.PrometheusMiddleware("jobhub"))

	routes.PublicApi(router)

	addr := ":8080"
	if config.AppConfig.Backend.Port != 0 {
		addr = fmt.Sprintf(":%d", config.AppConfig.Backend.Port)
	}
	if err := router.Run(addr); err != nil {
		panic(err)
	}
}
