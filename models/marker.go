package models

// Marker is a point annotation on a folder's base image. The column names
// match the legacy store schema, so stores written by older releases keep
// working.
type Marker struct {
	ID        string  `gorm:"column:id;primaryKey;type:text" json:"markerId"`
	Lat       float64 `gorm:"column:lat" json:"lat"`
	Lng       float64 `gorm:"column:lng" json:"lng"`
	Info      string  `gorm:"column:info;type:text" json:"info"`
	IconType  string  `gorm:"column:iconType;type:text" json:"iconType"`
	IconColor string  `gorm:"column:iconColor;type:text" json:"iconColor"`
	Notes     string  `gorm:"column:markerNotes;type:text" json:"markerNotes"`
}

func (Marker) TableName() string {
	return "markers"
}
