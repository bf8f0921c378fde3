package sharding

// ShardRegion - гео-регион (логический шард). ShardID - единственное значение,
// которое сохраняется на сущностях; остальные поля для маршрутизации и UI.
type ShardRegion struct {
	ShardID     string
	Code        string
	DisplayName string
	Emoji       string

	countries map[Country]struct{}
}

// Countries возвращает копию списка стран региона
func (r *ShardRegion) Countries() []Country {
	countries := make([]Country, 0, len(r.countries))
	for c := range r.countries {
		countries = append(countries, c)
	}
	return countries
}

// Contains проверяет принадлежность страны региону
func (r *ShardRegion) Contains(c Country) bool {
	_, ok := r.countries[c]
	return ok
}

// RegionSpec - описание региона в конфигурации топологии (yaml)
type RegionSpec struct {
	ShardID     string   `yaml:"shard_id"`
	Code        string   `yaml:"code"`
	DisplayName string   `yaml:"display_name"`
	Emoji       string   `yaml:"emoji"`
	Countries   []string `yaml:"countries"`
}

// ShardInfo - read-only проекция региона для слоя представления
type ShardInfo struct {
	ShardID     string `json:"shard_id"`
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
	Emoji       string `json:"emoji"`
}

// Info возвращает проекцию региона
func (r *ShardRegion) Info() ShardInfo {
	return ShardInfo{
		ShardID:     r.ShardID,
		Code:        r.Code,
		DisplayName: r.DisplayName,
		Emoji:       r.Emoji,
	}
}
