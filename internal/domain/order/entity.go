package order

import (
	"errors"
	"math"

	"order-fulfillment/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDeviceCount  = errors.New("device count must be positive")
	ErrDeviceCountTooLarge = errors.New("device count exceeds the storable maximum")
	ErrInvalidItemQuantity = errors.New("order item quantity must be positive")
	ErrMissingReason       = errors.New("invalid order requires a reason")
)

const moneyPlaces = 2

// MaxDeviceCount is the largest count the orders table can hold (INTEGER).
const MaxDeviceCount = math.MaxInt32

// Line is a committed quantity drawn from one inventory record.
type Line struct {
	InventoryID uuid.UUID
	Quantity    int
}

// Draft is an order snapshot ready to be persisted. Money is rounded to cents here and nowhere earlier.
type Draft struct {
	deviceCount  int
	destination  geo.Coordinate
	price        decimal.Decimal
	discount     decimal.Decimal
	shippingCost decimal.Decimal
	finalTotal   decimal.Decimal
	valid        bool
	reason       *string
	lines        []Line
}

type Amounts struct {
	Price        float64
	Discount     float64
	ShippingCost float64
	FinalTotal   float64
}

func NewValidDraft(deviceCount int, destination geo.Coordinate, amounts Amounts, lines []Line) (*Draft, error) {
	if err := validateDeviceCount(deviceCount); err != nil {
		return nil, err
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrInvalidItemQuantity
		}
	}
	d := newDraft(deviceCount, destination, amounts)
	d.valid = true
	d.lines = append([]Line(nil), lines...)
	return d, nil
}

func NewInvalidDraft(deviceCount int, destination geo.Coordinate, amounts Amounts, reason string) (*Draft, error) {
	if err := validateDeviceCount(deviceCount); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, ErrMissingReason
	}
	d := newDraft(deviceCount, destination, amounts)
	d.reason = &reason
	return d, nil
}

// Rejected turns a valid draft whose commit failed into an invalid one with the same amounts.
func (d *Draft) Rejected(reason string) (*Draft, error) {
	if reason == "" {
		return nil, ErrMissingReason
	}
	out := *d
	out.valid = false
	out.reason = &reason
	out.lines = nil
	return &out, nil
}

func validateDeviceCount(deviceCount int) error {
	if deviceCount <= 0 {
		return ErrInvalidDeviceCount
	}
	if deviceCount > MaxDeviceCount {
		return ErrDeviceCountTooLarge
	}
	return nil
}

func newDraft(deviceCount int, destination geo.Coordinate, amounts Amounts) *Draft {
	return &Draft{
		deviceCount:  deviceCount,
		destination:  destination,
		price:        RoundMoney(amounts.Price),
		discount:     RoundMoney(amounts.Discount),
		shippingCost: RoundMoney(amounts.ShippingCost),
		finalTotal:   RoundMoney(amounts.FinalTotal),
	}
}

func RoundMoney(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(moneyPlaces)
}

func (d *Draft) DeviceCount() int              { return d.deviceCount }
func (d *Draft) Destination() geo.Coordinate   { return d.destination }
func (d *Draft) Price() decimal.Decimal        { return d.price }
func (d *Draft) Discount() decimal.Decimal     { return d.discount }
func (d *Draft) ShippingCost() decimal.Decimal { return d.shippingCost }
func (d *Draft) FinalTotal() decimal.Decimal   { return d.finalTotal }
func (d *Draft) Valid() bool                   { return d.valid }
func (d *Draft) Reason() *string               { return d.reason }
func (d *Draft) Lines() []Line                 { return append([]Line(nil), d.lines...) }
