package services

import (
	"testing"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
)

func TestComputeFareAddsServiceFee(t *testing.T) {
	got, err := FareService{}.ComputeFare("75.00", "10.00")
	if err != nil {
		t.Fatalf("compute fare error: %v", err)
	}
	if got != "90.00" {
		t.Fatalf("fare = %s, want 90.00", got)
	}
}

func TestComputeFareDeterministic(t *testing.T) {
	route := models.Route{BaseFare: "100.00", DistanceFare: "1.50"}
	first, err := FareService{}.ComputeRouteFare(route)
	if err != nil {
		t.Fatalf("compute fare error: %v", err)
	}
	second, _ := FareService{}.ComputeRouteFare(route)
	if first != second || first != "106.50" {
		t.Fatalf("fare = %s / %s, want 106.50 both times", first, second)
	}
}

func TestComputeFareRejectsGarbage(t *testing.T) {
	if _, err := (FareService{}).ComputeFare("75.00", "ten"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
