package memory

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

type seedVehicle struct {
	number   string
	kind     string
	capacity int
	load     int
	status   vehicle.Status
	driver   [3]string
	location kernel.Location
}

type seedOrder struct {
	number   string
	required int
	status   order.Status
	priority order.Priority
	dest     kernel.Location
	dueIn    time.Duration
	product  seedProduct
}

type seedProduct struct {
	name string
	kind order.ProductType
}

var (
	pune   = kernel.MustNewLocation(18.5204, 73.8567, "Pune Warehouse")
	nashik = kernel.MustNewLocation(19.9975, 73.7898, "Nashik Farm Co-op")
	mumbai = kernel.MustNewLocation(19.0760, 72.8777, "Mumbai Distribution Hub")
	thane  = kernel.MustNewLocation(19.2183, 72.9781, "Thane Agri Store")
	satara = kernel.MustNewLocation(17.6805, 74.0183, "Satara Nursery")
)

var seedVehicles = []seedVehicle{
	{"MH-12-AB-1234", "Truck", 1000, 0, vehicle.Available,
		[3]string{"Ramesh Patil", "+91 98220 11111", "MH12-2019-0042"}, pune},
	{"MH-15-CD-5678", "Mini Truck", 300, 0, vehicle.Available,
		[3]string{"Suresh Jadhav", "+91 98220 22222", "MH15-2020-0117"}, nashik},
	{"MH-04-EF-9012", "Truck", 2000, 1500, vehicle.InTransit,
		[3]string{"Vijay Shinde", "+91 98220 33333", "MH04-2018-0358"}, thane},
	{"MH-11-GH-3456", "Van", 800, 0, vehicle.Maintenance,
		[3]string{"Anil Pawar", "+91 98220 44444", "MH11-2021-0290"}, satara},
}

var seedOrders = []seedOrder{
	{"ORD-001", 500, order.Pending, order.PriorityHigh, nashik, 8 * time.Hour,
		seedProduct{"Tomato Seeds - Hybrid", order.ProductSeeds}},
	{"ORD-002", 1200, order.Pending, order.PriorityMedium, mumbai, 24 * time.Hour,
		seedProduct{"Organic Fertilizer", order.ProductFertilizers}},
	{"ORD-003", 1500, order.InProgress, order.PriorityHigh, mumbai, 4 * time.Hour,
		seedProduct{"NPK Fertilizer", order.ProductFertilizers}},
}

// Seed fills an empty store with a demo fleet: four vehicles, two pending orders and one
// delivery in progress. ORD-001 needs 500 kg and fits MH-12-AB-1234 but not the 300 kg
// MH-15-CD-5678.
func Seed(ctx context.Context, uow ports.UnitOfWork, now time.Time) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicles := make(map[string]*vehicle.Vehicle, len(seedVehicles))
	for _, sv := range seedVehicles {
		driver, err := vehicle.NewDriver(kernel.NewUUID(), sv.driver[0], sv.driver[1], sv.driver[2])
		if err != nil {
			return fmt.Errorf("seed driver of %s: %w", sv.number, err)
		}
		v, err := vehicle.RestoreVehicle(kernel.NewUUID(), sv.number, sv.kind, sv.capacity, sv.load,
			sv.status, driver, sv.location, now)
		if err != nil {
			return fmt.Errorf("seed vehicle %s: %w", sv.number, err)
		}
		if err = uow.VehicleRepository().Add(ctx, v); err != nil {
			return err
		}
		vehicles[sv.number] = v
	}

	orders := make(map[string]*order.Order, len(seedOrders))
	for _, so := range seedOrders {
		product, err := order.NewProduct(kernel.NewUUID(), so.product.name, so.product.kind,
			so.required, "kg", so.required/50)
		if err != nil {
			return fmt.Errorf("seed product of %s: %w", so.number, err)
		}
		window, err := order.NewDeliveryWindow(now, now.Add(so.dueIn))
		if err != nil {
			return err
		}
		o, err := order.RestoreOrder(kernel.NewUUID(), so.number, []order.Product{product}, so.dest, so.required,
			window, so.priority, so.status, now.Add(-time.Hour))
		if err != nil {
			return fmt.Errorf("seed order %s: %w", so.number, err)
		}
		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return err
		}
		orders[so.number] = o
	}

	d, err := seedDelivery(orders["ORD-003"], vehicles["MH-04-EF-9012"], now)
	if err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func seedDelivery(o *order.Order, v *vehicle.Vehicle, now time.Time) (*delivery.Delivery, error) {
	started := now.Add(-2 * time.Hour)
	pickup, err := delivery.NewStop(kernel.NewUUID(), pune, delivery.StopPickup, delivery.StopCompleted,
		started, &started, "")
	if err != nil {
		return nil, err
	}
	dropOff, err := delivery.NewStop(kernel.NewUUID(), o.Destination(), delivery.StopDelivery,
		delivery.StopPending, o.DeliveryWindow().End(), nil, "Call before arrival")
	if err != nil {
		return nil, err
	}

	snapshot := delivery.SnapshotOf(v)
	return delivery.RestoreDelivery(kernel.NewUUID(), o.ID(), v.ID(), o.Number(), snapshot,
		delivery.RouteBetween(pune, o.Destination()), delivery.StatusInProgress, 65,
		o.DeliveryWindow().End(), started, nil, []delivery.Stop{pickup, dropOff})
}
