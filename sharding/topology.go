package sharding

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultShardID - регион по умолчанию для запросов без страны.
// Бизнес-решение: основная аудитория платформы в Юго-Восточной Азии.
const DefaultShardID = "sea"

// DefaultTopology возвращает встроенное разбиение стран по регионам.
// Используется, если в конфиге не указан файл топологии. Назначение
// страна -> регион - конфигурация деплоя, менять можно только вместе
// с миграционным прогоном по уже назначенным пользователям.
func DefaultTopology() []RegionSpec {
	return []RegionSpec{
		{
			ShardID: "sea", Code: "SEA", DisplayName: "Southeast Asia", Emoji: "🌏",
			Countries: []string{
				"VIETNAM", "THAILAND", "SINGAPORE", "MALAYSIA", "INDONESIA",
				"PHILIPPINES", "MYANMAR", "CAMBODIA", "LAOS", "BRUNEI",
			},
		},
		{
			ShardID: "eas", Code: "EAS", DisplayName: "East Asia", Emoji: "🏯",
			Countries: []string{
				"CHINA", "JAPAN", "SOUTH_KOREA", "TAIWAN", "HONG_KONG", "MONGOLIA",
			},
		},
		{
			ShardID: "sas", Code: "SAS", DisplayName: "South Asia", Emoji: "🛕",
			Countries: []string{
				"INDIA", "PAKISTAN", "BANGLADESH", "SRI_LANKA", "NEPAL",
			},
		},
		{
			ShardID: "mea", Code: "MEA", DisplayName: "Middle East", Emoji: "🕌",
			Countries: []string{
				"UAE", "SAUDI_ARABIA", "QATAR", "ISRAEL", "TURKEY", "EGYPT",
			},
		},
		{
			ShardID: "eu", Code: "EU", DisplayName: "Europe", Emoji: "🏰",
			Countries: []string{
				"GERMANY", "FRANCE", "UK", "ITALY", "SPAIN", "NETHERLANDS",
				"POLAND", "SWEDEN", "NORWAY", "FINLAND", "DENMARK", "SWITZERLAND",
				"AUSTRIA", "BELGIUM", "PORTUGAL", "CZECHIA", "IRELAND", "UKRAINE",
				"ROMANIA",
			},
		},
		{
			ShardID: "na", Code: "NA", DisplayName: "North America", Emoji: "🗽",
			Countries: []string{"USA", "CANADA", "MEXICO"},
		},
		{
			ShardID: "latam", Code: "LATAM", DisplayName: "Latin America", Emoji: "🌎",
			Countries: []string{
				"BRAZIL", "ARGENTINA", "CHILE", "COLOMBIA", "PERU", "URUGUAY",
			},
		},
		{
			ShardID: "afr", Code: "AFR", DisplayName: "Africa", Emoji: "🌍",
			Countries: []string{
				"NIGERIA", "SOUTH_AFRICA", "KENYA", "GHANA", "MOROCCO", "ETHIOPIA",
			},
		},
		{
			ShardID: "oce", Code: "OCE", DisplayName: "Oceania", Emoji: "🏝",
			Countries: []string{"AUSTRALIA", "NEW_ZEALAND", "FIJI"},
		},
	}
}

type topologyFile struct {
	DefaultShard string       `yaml:"default_shard"`
	Regions      []RegionSpec `yaml:"regions"`
}

// LoadTopologyFile читает описание топологии из yaml-файла.
// Возвращает регионы и shard_id дефолтного региона (пустой, если не задан).
func LoadTopologyFile(filePath string) ([]RegionSpec, string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read topology file: %w", err)
	}
	var file topologyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("failed to parse topology file: %w", err)
	}
	return file.Regions, file.DefaultShard, nil
}
