package domain

import "errors"

var ErrClassroomNotFound = errors.New("classroom not found")

// Classroom is a bookable room in the resource catalog.
type Classroom struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:100;not null"`
	Capacity int    `json:"capacity" gorm:"not null"`
	Color    string `json:"color" gorm:"size:32;not null"`
}
