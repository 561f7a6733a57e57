package services

import (
	"math"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// FleetMetrics summarizes vehicle utilization.
type FleetMetrics struct {
	TotalVehicles      int
	StatusCounts       map[vehicle.Status]int
	TotalCapacity      int
	TotalLoad          int
	UtilizationPercent int
	AvailablePercent   int
}

// ComputeFleetMetrics derives utilization = round(total load / total capacity * 100) and
// the share of Available vehicles. Both are 0 for an empty fleet.
func ComputeFleetMetrics(vehicles []*vehicle.Vehicle) FleetMetrics {
	m := FleetMetrics{
		TotalVehicles: len(vehicles),
		StatusCounts:  make(map[vehicle.Status]int, len(vehicle.Statuses())),
	}
	for _, st := range vehicle.Statuses() {
		m.StatusCounts[st] = 0
	}

	for _, v := range vehicles {
		m.StatusCounts[v.Status()]++
		m.TotalCapacity += v.Capacity()
		m.TotalLoad += v.CurrentLoad()
	}

	m.UtilizationPercent = percent(m.TotalLoad, m.TotalCapacity)
	m.AvailablePercent = percent(m.StatusCounts[vehicle.Available], m.TotalVehicles)
	return m
}

// DeliveryStatusSummary is the delivery status card.
type DeliveryStatusSummary struct {
	StatusCounts   map[delivery.Status]int
	ActiveCount    int
	CompletedCount int
	OnTimeRate     int
}

// ComputeDeliveryStatus counts deliveries per status. The on-time rate is the share of
// completed deliveries finished by their eta, and 100 when none has completed.
func ComputeDeliveryStatus(deliveries []*delivery.Delivery) DeliveryStatusSummary {
	s := DeliveryStatusSummary{
		StatusCounts: make(map[delivery.Status]int, len(delivery.Statuses())),
		OnTimeRate:   100,
	}
	for _, st := range delivery.Statuses() {
		s.StatusCounts[st] = 0
	}

	onTime := 0
	for _, d := range deliveries {
		s.StatusCounts[d.Status()]++
		if d.IsActive() {
			s.ActiveCount++
		}
		if d.Status() == delivery.StatusCompleted {
			s.CompletedCount++
			if d.IsOnTime() {
				onTime++
			}
		}
	}

	if s.CompletedCount > 0 {
		s.OnTimeRate = percent(onTime, s.CompletedCount)
	}
	return s
}

// DashboardKPIs are the headline counters of the dashboard.
type DashboardKPIs struct {
	TotalFleet       int
	AvailableNow     int
	ActiveDeliveries int
	PendingOrders    int
	UnderMaintenance int
}

func ComputeDashboardKPIs(
	vehicles []*vehicle.Vehicle,
	orders []*order.Order,
	deliveries []*delivery.Delivery,
) DashboardKPIs {
	k := DashboardKPIs{TotalFleet: len(vehicles)}

	for _, v := range vehicles {
		switch v.Status() {
		case vehicle.Available:
			k.AvailableNow++
		case vehicle.Maintenance:
			k.UnderMaintenance++
		}
	}
	for _, o := range orders {
		if o.Status() == order.Pending {
			k.PendingOrders++
		}
	}
	for _, d := range deliveries {
		if d.IsActive() {
			k.ActiveDeliveries++
		}
	}
	return k
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
