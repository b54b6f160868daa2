package device

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyDeviceName   = errors.New("device name cannot be empty")
	ErrNegativeUnitPrice = errors.New("unit price cannot be negative")
	ErrInvalidUnitWeight = errors.New("unit weight must be positive")
)

// Device is immutable reference data for a sellable unit.
type Device struct {
	id           uuid.UUID
	name         string
	unitPrice    float64
	unitWeightKg float64
}

func NewDevice(id uuid.UUID, name string, unitPrice, unitWeightKg float64) (Device, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Device{}, ErrEmptyDeviceName
	}
	if unitPrice < 0 {
		return Device{}, ErrNegativeUnitPrice
	}
	if unitWeightKg <= 0 {
		return Device{}, ErrInvalidUnitWeight
	}
	return Device{id: id, name: name, unitPrice: unitPrice, unitWeightKg: unitWeightKg}, nil
}

// Reconstruct rebuilds a Device from persisted values without validation.
func Reconstruct(id uuid.UUID, name string, unitPrice, unitWeightKg float64) Device {
	return Device{id: id, name: name, unitPrice: unitPrice, unitWeightKg: unitWeightKg}
}

func (d Device) ID() uuid.UUID         { return d.id }
func (d Device) Name() string          { return d.name }
func (d Device) UnitPrice() float64    { return d.unitPrice }
func (d Device) UnitWeightKg() float64 { return d.unitWeightKg }
