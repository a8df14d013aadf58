package models

type MenuItem struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Price    int    `json:"price"` // minor currency units
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Active   bool   `json:"active" gorm:"default:true"`
}

func (MenuItem) TableName() string { return "menu" }
