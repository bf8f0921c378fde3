package sharding

import (
	"fmt"
	"sort"
	"strings"
)

// PartitionTable - неизменяемое разбиение справочника стран по шард-регионам.
// Собирается один раз на старте процесса, после этого только читается, поэтому
// безопасна для конкурентного доступа без блокировок.
type PartitionTable struct {
	regions       []*ShardRegion
	byCountry     map[Country]*ShardRegion
	byShardID     map[string]*ShardRegion
	defaultRegion *ShardRegion
}

// NewPartitionTable собирает таблицу из описаний регионов и валидирует инварианты:
// полнота (каждая страна справочника назначена), непересекаемость (ровно один
// регион на страну), уникальность shard_id, дефолтный регион существует.
// Нарушение - ошибка конфигурации, процесс не должен стартовать.
func NewPartitionTable(specs []RegionSpec, defaultShardID string) (*PartitionTable, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("sharding topology is empty")
	}

	table := &PartitionTable{
		regions:   make([]*ShardRegion, 0, len(specs)),
		byCountry: make(map[Country]*ShardRegion, len(countryCatalog)),
		byShardID: make(map[string]*ShardRegion, len(specs)),
	}

	for _, spec := range specs {
		if spec.ShardID == "" {
			return nil, fmt.Errorf("region %q has empty shard_id", spec.Code)
		}
		if _, exists := table.byShardID[spec.ShardID]; exists {
			return nil, fmt.Errorf("duplicate shard_id %q", spec.ShardID)
		}

		region := &ShardRegion{
			ShardID:     spec.ShardID,
			Code:        spec.Code,
			DisplayName: spec.DisplayName,
			Emoji:       spec.Emoji,
			countries:   make(map[Country]struct{}, len(spec.Countries)),
		}

		for _, name := range spec.Countries {
			country, ok := ParseCountry(name)
			if !ok {
				return nil, fmt.Errorf("region %q: unknown country %q", spec.ShardID, name)
			}
			// Непересекаемость: страна не может быть в двух регионах
			if other, assigned := table.byCountry[country]; assigned {
				return nil, fmt.Errorf("country %s assigned to both %q and %q", country, other.ShardID, spec.ShardID)
			}
			region.countries[country] = struct{}{}
			table.byCountry[country] = region
		}

		table.byShardID[spec.ShardID] = region
		table.regions = append(table.regions, region)
	}

	// Полнота: объединение регионов покрывает весь справочник
	if len(table.byCountry) != len(countryCatalog) {
		var missing []string
		for c := range countryCatalog {
			if _, ok := table.byCountry[c]; !ok {
				missing = append(missing, string(c))
			}
		}
		sort.Strings(missing)
		return nil, fmt.Errorf("topology does not cover countries: %s", strings.Join(missing, ", "))
	}

	defaultRegion, ok := table.byShardID[defaultShardID]
	if !ok {
		return nil, fmt.Errorf("default shard %q is not a configured region", defaultShardID)
	}
	table.defaultRegion = defaultRegion

	return table, nil
}

// RegionFor - тотальная функция страна -> регион для валидных стран справочника.
// Для неизвестной страны возвращает nil (политика fallback живет в ShardRouter).
func (t *PartitionTable) RegionFor(c Country) *ShardRegion {
	return t.byCountry[c]
}

// RegionForCode ищет регион по ISO-коду или имени ключа страны (без учета регистра).
// Неизвестный код - ok=false, никакого неявного дефолта здесь нет.
func (t *PartitionTable) RegionForCode(code string) (*ShardRegion, bool) {
	country, ok := ParseCountry(code)
	if !ok {
		return nil, false
	}
	return t.byCountry[country], true
}

// DefaultRegion возвращает регион по умолчанию для запросов без страны
func (t *PartitionTable) DefaultRegion() *ShardRegion {
	return t.defaultRegion
}

// Regions возвращает все регионы таблицы, отсортированные по shard_id
func (t *PartitionTable) Regions() []*ShardRegion {
	regions := make([]*ShardRegion, len(t.regions))
	copy(regions, t.regions)
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].ShardID < regions[j].ShardID
	})
	return regions
}
