package inventory

import (
	"errors"
	"strings"

	"order-fulfillment/internal/domain/geo"

	"github.com/google/uuid"
)

var (
	ErrEmptyLocation = errors.New("warehouse location cannot be empty")
	ErrNegativeStock = errors.New("stock cannot be negative")
)

// Record is the stock of one device held at one warehouse.
type Record struct {
	id       uuid.UUID
	location string
	coord    geo.Coordinate
	stock    int
	deviceID uuid.UUID
}

func NewRecord(id uuid.UUID, location string, coord geo.Coordinate, stock int, deviceID uuid.UUID) (Record, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Record{}, ErrEmptyLocation
	}
	if stock < 0 {
		return Record{}, ErrNegativeStock
	}
	return Record{id: id, location: location, coord: coord, stock: stock, deviceID: deviceID}, nil
}

func Reconstruct(id uuid.UUID, location string, coord geo.Coordinate, stock int, deviceID uuid.UUID) Record {
	return Record{id: id, location: location, coord: coord, stock: stock, deviceID: deviceID}
}

func (r Record) ID() uuid.UUID              { return r.id }
func (r Record) Location() string           { return r.location }
func (r Record) Coordinate() geo.Coordinate { return r.coord }
func (r Record) Stock() int                 { return r.stock }
func (r Record) DeviceID() uuid.UUID        { return r.deviceID }
