package request

import (
	"order-fulfillment/internal/domain/geo"
	"order-fulfillment/internal/usecase/commands"
	"order-fulfillment/internal/usecase/queries"
)

// OrderRequest is shared by placement and verification. coordinateX is the
// latitude and coordinateY the longitude of the delivery point.
type OrderRequest struct {
	DeviceCount int      `json:"deviceCount" binding:"required,min=1,max=2147483647"`
	CoordinateX *float64 `json:"coordinateX" binding:"required,min=-90,max=90"`
	CoordinateY *float64 `json:"coordinateY" binding:"required,min=-180,max=180"`
}

func (r OrderRequest) Destination() geo.Coordinate {
	return geo.NewCoordinate(*r.CoordinateX, *r.CoordinateY)
}

func (r OrderRequest) ToPlaceParams() commands.PlaceParams {
	return commands.PlaceParams{
		DeviceCount: r.DeviceCount,
		Destination: r.Destination(),
	}
}

func (r OrderRequest) ToVerifyParams() queries.VerifyParams {
	return queries.VerifyParams{
		DeviceCount: r.DeviceCount,
		Destination: r.Destination(),
	}
}
