package dbmodels

// Single key/value pair, backs the postgres token store
type KvEntry struct {
	Base
	Key   string `json:"key" gorm:"uniqueIndex"`
	Value string `json:"value"`
}
