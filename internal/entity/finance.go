package entity

// FinanceConfig represents a single finance setting, stored as a key/value row
// so that settings can be changed without schema migrations.
type FinanceConfig struct {
	Key       string `json:"key" gorm:"column:key;primaryKey"`
	Value     string `json:"value" gorm:"column:value"`
	UpdatedBy string `json:"updated_by" gorm:"column:updated_by"`
	UpdatedAt int64  `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for FinanceConfig
func (FinanceConfig) TableName() string {
	return "finance_configs"
}
