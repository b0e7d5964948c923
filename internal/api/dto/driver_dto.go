package dto

import "github.com/spec-kit/driver-registry/internal/domain"

// DriverResponse envelope for a successful lookup.
type DriverResponse struct {
	OK     bool                 `json:"ok"`
	Driver *domain.DriverRecord `json:"driver"`
}
