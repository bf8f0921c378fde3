package handlers

import (
	"jobhub/services"
	"jobhub/sharding"

	"github.com/gin-gonic/gin"
)

type shardRegionInfo struct {
	sharding.ShardInfo
	Countries []string `json:"countries"`
	IsDefault bool     `json:"is_default"`
}

// ShardsList возвращает все регионы таблицы разбиения
func ShardsList(c *gin.Context) {
	table := services.Router.Table()
	defaultID := table.DefaultRegion().ShardID

	var regions []shardRegionInfo
	for _, region := range table.Regions() {
		countries := region.Countries()
		codes := make([]string, 0, len(countries))
		for _, country := range countries {
			codes = append(codes, country.Code())
		}
		regions = append(regions, shardRegionInfo{
			ShardInfo: region.Info(),
			Countries: codes,
			IsDefault: region.ShardID == defaultID,
		})
	}

	c.JSON(200, gin.H{"shards": regions})
}

// ShardResolve возвращает решение роутера для кода страны.
// Пустой параметр country трактуется как поиск без страны.
func ShardResolve(c *gin.Context) {
	countryCode := c.Query("country")
	region := services.Router.RouteSearchQuery(countryCode)

	c.JSON(200, gin.H{
		"country": countryCode,
		"shard":   region.Info(),
	})
}

// ShardStats возвращает счетчики заселенности шардов
func ShardStats(c *gin.Context) {
	stats, err := services.ShardStatsInstance.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(503, gin.H{"error": "Shard stats unavailable"})
		return
	}
	c.JSON(200, gin.H{"user_count": stats})
}
