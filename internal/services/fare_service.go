package services

import (
	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/utils"
)

// ServiceFee is added to every booking on top of the route fares.
const ServiceFee = "5.00"

// FareService computes the fare for one seat: base fare + distance fare +
// service fee, all in decimal-string money.
type FareService struct{}

func (s FareService) ComputeFare(baseFare, distanceFare string) (string, error) {
	total, err := utils.AddMoney(baseFare, distanceFare, ServiceFee)
	if err != nil {
		return "", domain.ValidationError{Field: "fare", Msg: err.Error(), Err: err}
	}
	return total, nil
}

// ComputeRouteFare is the route-level convenience wrapper.
func (s FareService) ComputeRouteFare(route models.Route) (string, error) {
	return s.ComputeFare(route.BaseFare, route.DistanceFare)
}
