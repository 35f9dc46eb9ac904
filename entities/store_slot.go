package entities

// StoreSlot holds one named collection of a household as a JSON document.
type StoreSlot struct {
	Key     string `gorm:"column:slot_key;primaryKey;size:255" json:"key"`
	Value   string `gorm:"type:text" json:"value"`
	Version int64  `gorm:"not null;default:0" json:"version"`
	Timestamp
}
