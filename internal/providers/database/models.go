package database

type StoreApp struct {
	ID       int32
	Name     string
	Rating   float64
	People   int32
	Category string
	Date     string
	Price    string
}
