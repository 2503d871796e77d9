package models

// Line is a two-endpoint annotation connecting two coordinates.
type Line struct {
	ID       string  `gorm:"column:id;primaryKey;type:text" json:"lineId"`
	StartLat float64 `gorm:"column:start_lat" json:"start_lat"`
	StartLng float64 `gorm:"column:start_lng" json:"start_lng"`
	EndLat   float64 `gorm:"column:end_lat" json:"end_lat"`
	EndLng   float64 `gorm:"column:end_lng" json:"end_lng"`
	Info     string  `gorm:"column:info;type:text" json:"info"`
	Color    string  `gorm:"column:color;type:text" json:"color"`
	Notes    string  `gorm:"column:notes;type:text" json:"notes"`
}

func (Line) TableName() string {
	return "lines"
}
