package services

import (
	"fmt"
	"log"

	"jobhub/config"
	"jobhub/sharding"
)

// Router - процессный синглтон гео-роутера. Собирается один раз на старте,
// дальше только читается из хендлеров и сервисов.
var Router *sharding.ShardRouter

// InitShardRouter собирает таблицу разбиения из конфига и публикует роутер.
// Ошибка здесь - сломанная топология, стартовать с ней нельзя.
func InitShardRouter(emitter sharding.MigrationEmitter) error {
	specs := sharding.DefaultTopology()
	defaultShard := sharding.DefaultShardID

	if config.AppConfig != nil {
		shardConf := config.AppConfig.Sharding
		if shardConf.TopologyPath != "" {
			fileSpecs, fileDefault, err := sharding.LoadTopologyFile(shardConf.TopologyPath)
			if err != nil {
				return fmt.Errorf("failed to load sharding topology: %w", err)
			}
			specs = fileSpecs
			if fileDefault != "" {
				defaultShard = fileDefault
			}
		}
		if shardConf.DefaultShard != "" {
			defaultShard = shardConf.DefaultShard
		}
	}

	table, err := sharding.NewPartitionTable(specs, defaultShard)
	if err != nil {
		return fmt.Errorf("invalid sharding topology: %w", err)
	}

	Router = sharding.NewShardRouter(table, emitter)
	log.Printf("Shard router initialized: %d regions, default shard %q",
		len(table.Regions()), table.DefaultRegion().ShardID)
	return nil
}
