package models

import (
	"strings"

	"gorm.io/gorm"
)

type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "active"
	ServiceInactive ServiceStatus = "inactive"
)

type Service struct {
	gorm.Model
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Category    string        `json:"category"`
	Location    string        `json:"location"`
	Images      []string      `json:"images" gorm:"serializer:json"`
	Status      ServiceStatus `json:"status"`
	VendorID    uint          `json:"vendor_id"`
	Vendor      User          `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
}

func (s *Service) BeforeSave(tx *gorm.DB) error {
	s.Category = strings.ToLower(strings.TrimSpace(s.Category))
	if s.Status == "" {
		s.Status = ServiceActive
	}
	return nil
}
