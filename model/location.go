package model

type Location struct {
	ID      string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"column:name;type:text;not null" json:"name"`
	Address string    `gorm:"column:address;type:text" json:"address"`
	Lng     float64   `gorm:"column:lng;type:numeric;not null" json:"-"`
	Lat     float64   `gorm:"column:lat;type:numeric;not null" json:"-"`
	Rating  int       `gorm:"column:rating;type:integer;not null;default:0" json:"rating"`
	Reviews []Review  `gorm:"foreignKey:LocationID;references:ID" json:"reviews"`
	Coords  []float64 `gorm:"-" json:"coords"` // [lng, lat], injected by the DAO
}

func (Location) TableName() string {
	return "location"
}

// LocationSummary is one row of a nearby search, with the raw distance from
// the search origin in meters.
type LocationSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Rating   int     `json:"rating"`
	Distance float64 `json:"distance"`
}

type LocationHeader struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// LocatedReview is the composite result of reading a single review: the
// review itself plus enough of its parent location for display.
type LocatedReview struct {
	Location LocationHeader `json:"location"`
	Review   Review         `json:"review"`
}
