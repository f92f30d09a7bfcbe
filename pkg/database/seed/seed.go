package seed

import "gorm.io/gorm"

// Seed records a data seed that has already been applied.
type Seed struct {
	gorm.Model
	Name string `gorm:"not null;unique"`
}
