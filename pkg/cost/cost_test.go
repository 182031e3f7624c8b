package cost

import (
	"math"
	"testing"
)

func defaultParams() Parameters {
	return DefaultParameters()
}

func TestComputeReferenceFleet(t *testing.T) {
	r := Compute(defaultParams(), DefaultConstants())

	b := r.Breakdown
	if b.Driver != 62500 {
		t.Errorf("driver cost = %v, want 62500", b.Driver)
	}
	if b.Fuel != 37500 {
		t.Errorf("fuel cost = %v, want 37500", b.Fuel)
	}
	if b.Maintenance != 800 {
		t.Errorf("maintenance cost = %v, want 800", b.Maintenance)
	}
	if r.MonthlyCost != 100800 {
		t.Errorf("monthly cost = %v, want 100800", r.MonthlyCost)
	}
	if r.ExpectedMonthlyRiders != 6400 {
		t.Errorf("riders = %d, want 6400", r.ExpectedMonthlyRiders)
	}
	if r.CostPerRider != 15.75 {
		t.Errorf("cost per rider = %v, want 15.75", r.CostPerRider)
	}
	if r.MonthlyRevenue != 16_000_000 {
		t.Errorf("revenue = %v, want 16000000", r.MonthlyRevenue)
	}

	wantROI := (16_000_000.0 - 100800.0) / 100800.0 * 100
	if math.Abs(r.ROIPercent-wantROI) > 1e-9 {
		t.Errorf("roi = %v, want %v", r.ROIPercent, wantROI)
	}
	if r.BreakEvenMonths != 1 {
		t.Errorf("break-even = %d, want 1", r.BreakEvenMonths)
	}
}

func TestComputeBreakdownShares(t *testing.T) {
	b := Compute(defaultParams(), DefaultConstants()).Breakdown
	// 62500/100800 = 62.0%, 37500/100800 = 37.2%, 800/100800 = 0.8%
	if b.DriverShare != 62 || b.FuelShare != 37 || b.MaintenanceShare != 1 {
		t.Errorf("shares = %d/%d/%d, want 62/37/1", b.DriverShare, b.FuelShare, b.MaintenanceShare)
	}
	if b.Total != 100800 {
		t.Errorf("breakdown total = %v, want 100800", b.Total)
	}
}

func TestComputeAnnualCost(t *testing.T) {
	for _, vehicles := range []int{1, 7, 10, 33} {
		p := defaultParams()
		p.VehicleCount = vehicles
		p.DriverDailyWage = 251.37
		r := Compute(p, DefaultConstants())
		if r.AnnualCost != r.MonthlyCost*12 {
			t.Errorf("vehicles=%d: annual = %v, want %v", vehicles, r.AnnualCost, r.MonthlyCost*12)
		}
	}
}

func TestComputeZeroRiders(t *testing.T) {
	p := defaultParams()
	p.VehicleCount = 0
	r := Compute(p, DefaultConstants())

	if r.ExpectedMonthlyRiders != 0 {
		t.Fatalf("riders = %d, want 0", r.ExpectedMonthlyRiders)
	}
	if r.CostPerRider != 0 {
		t.Errorf("cost per rider = %v, want 0", r.CostPerRider)
	}
	if r.ROIPercent != 0 {
		t.Errorf("roi = %v, want 0", r.ROIPercent)
	}
	if r.BreakEvenMonths != 0 {
		t.Errorf("break-even = %d, want 0", r.BreakEvenMonths)
	}
}

func TestComputeZeroRidersWithCost(t *testing.T) {
	// Riders vanish with the service area but maintenance still costs money.
	p := defaultParams()
	p.ServiceAreaKm2 = 0
	r := Compute(p, DefaultConstants())

	if r.ExpectedMonthlyRiders != 0 {
		t.Fatalf("riders = %d, want 0", r.ExpectedMonthlyRiders)
	}
	if r.CostPerRider != 0 {
		t.Errorf("cost per rider = %v, want 0", r.CostPerRider)
	}
	if r.ROIPercent != -100 {
		t.Errorf("roi = %v, want -100", r.ROIPercent)
	}
	if r.BreakEvenMonths != 0 {
		t.Errorf("break-even = %d, want 0 for negative roi", r.BreakEvenMonths)
	}
}

func TestComputeZeroCost(t *testing.T) {
	p := defaultParams()
	p.DriverDailyWage = 0
	p.DailyFuelCostPerVehicle = 0
	p.MonthlyMaintenanceCostPerVehicle = 0
	r := Compute(p, DefaultConstants())

	if r.MonthlyCost != 0 {
		t.Fatalf("monthly cost = %v, want 0", r.MonthlyCost)
	}
	if r.ROIPercent != 0 {
		t.Errorf("roi = %v, want 0 when cost is 0", r.ROIPercent)
	}
	if r.BreakEvenMonths != 0 {
		t.Errorf("break-even = %d, want 0", r.BreakEvenMonths)
	}
	if r.Breakdown.DriverShare != 0 || r.Breakdown.FuelShare != 0 || r.Breakdown.MaintenanceShare != 0 {
		t.Error("shares should be 0 when total cost is 0")
	}
}

func TestComputeMonotonicInVehicles(t *testing.T) {
	c := DefaultConstants()
	prev := Compute(defaultParams(), c)
	for vehicles := 11; vehicles <= 40; vehicles++ {
		p := defaultParams()
		p.VehicleCount = vehicles
		r := Compute(p, c)
		if r.MonthlyCost <= prev.MonthlyCost {
			t.Errorf("vehicles=%d: monthly cost %v did not increase from %v", vehicles, r.MonthlyCost, prev.MonthlyCost)
		}
		if r.ExpectedMonthlyRiders <= prev.ExpectedMonthlyRiders {
			t.Errorf("vehicles=%d: riders %d did not increase from %d", vehicles, r.ExpectedMonthlyRiders, prev.ExpectedMonthlyRiders)
		}
		prev = r
	}
}

func TestComputeRoundsRiders(t *testing.T) {
	p := defaultParams()
	p.VehicleCount = 1
	p.OperatingHoursPerDay = 9
	p.OperatingDaysPerMonth = 21
	p.ServiceAreaKm2 = 3.3
	// 1*9*3.2*21*0.33 = 199.584
	r := Compute(p, DefaultConstants())
	if r.ExpectedMonthlyRiders != 200 {
		t.Errorf("riders = %d, want 200", r.ExpectedMonthlyRiders)
	}
}

func TestComputeManWonRevenue(t *testing.T) {
	c := DefaultConstants()
	c.FareToCostUnit = WonToManWon
	r := Compute(defaultParams(), c)

	// 6400 riders * 2500 KRW = 1600 man-won against 100800 man-won of cost.
	if math.Abs(r.MonthlyRevenue-1600) > 1e-6 {
		t.Errorf("revenue = %v, want 1600", r.MonthlyRevenue)
	}
	if r.ROIPercent >= 0 {
		t.Errorf("roi = %v, want negative", r.ROIPercent)
	}
	if r.BreakEvenMonths != 0 {
		t.Errorf("break-even = %d, want 0", r.BreakEvenMonths)
	}
}

func TestComputeCustomRidership(t *testing.T) {
	c := DefaultConstants()
	c.RidersPerVehicleHour = 6.4
	r := Compute(defaultParams(), c)
	if r.ExpectedMonthlyRiders != 12800 {
		t.Errorf("riders = %d, want 12800", r.ExpectedMonthlyRiders)
	}
}

func TestComputeZeroAreaUnit(t *testing.T) {
	c := DefaultConstants()
	c.AreaUnitKm2 = 0
	r := Compute(defaultParams(), c)
	if r.ExpectedMonthlyRiders != 0 {
		t.Errorf("riders = %d, want 0 when area unit is 0", r.ExpectedMonthlyRiders)
	}
}

func TestComputeBreakEvenCeil(t *testing.T) {
	// Revenue slightly above cost gives a long break-even horizon.
	c := DefaultConstants()
	c.AverageFare = 16.5
	r := Compute(defaultParams(), c)
	// revenue = 6400*16.5 = 105600, cost = 100800, margin 4800 -> ceil(21) = 21
	if r.BreakEvenMonths != 21 {
		t.Errorf("break-even = %d, want 21", r.BreakEvenMonths)
	}

	c.AverageFare = 16.6
	r = Compute(defaultParams(), c)
	// revenue = 106240, margin 5440 -> 18.53 -> 19
	if r.BreakEvenMonths != 19 {
		t.Errorf("break-even = %d, want 19", r.BreakEvenMonths)
	}
}
