package entity

type Zone struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Table struct {
	ID     uint `json:"id"`
	Number int  `json:"number"`
	Seats  int  `json:"seats"`

	ZoneID uint `json:"zoneId"`
	Zone   Zone `json:"zone"`
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
)
