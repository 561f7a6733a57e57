package http

import (
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/loadcheck"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	ID uuid.UUID `json:"id"`
}

type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type Driver struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"licenseNumber,omitempty"`
}

type Vehicle struct {
	ID                 uuid.UUID `json:"id"`
	VehicleNumber      string    `json:"vehicleNumber"`
	Type               string    `json:"type"`
	Capacity           int       `json:"capacity"`
	CurrentLoad        int       `json:"currentLoad"`
	CapacityPercentage float64   `json:"capacityPercentage"`
	Status             string    `json:"status"`
	Driver             Driver    `json:"driver"`
	Location           Location  `json:"location"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

type NewVehicle struct {
	VehicleNumber string `json:"vehicleNumber"`
	Type          string `json:"type"`
	Capacity      int    `json:"capacity"`
	DriverName    string `json:"driverName"`
	DriverPhone   string `json:"driverPhone"`
	Location      string `json:"location"`
	Status        string `json:"status,omitempty"`
}

type Tab struct {
	Tab   string `json:"tab"`
	Count int    `json:"count"`
}

type VehicleList struct {
	Vehicles []Vehicle `json:"vehicles"`
	Tabs     []Tab     `json:"tabs"`
}

type VehicleDetail struct {
	Vehicle    Vehicle    `json:"vehicle"`
	Deliveries []Delivery `json:"deliveries"`
}

type Product struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Quantity   int       `json:"quantity"`
	Unit       string    `json:"unit"`
	CrateCount int       `json:"crateCount"`
}

type DeliveryWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Order struct {
	ID               uuid.UUID      `json:"id"`
	OrderNumber      string         `json:"orderNumber"`
	Products         []Product      `json:"products"`
	Destination      Location       `json:"destination"`
	RequiredCapacity int            `json:"requiredCapacity"`
	DeliveryWindow   DeliveryWindow `json:"deliveryWindow"`
	Priority         string         `json:"priority"`
	Status           string         `json:"status"`
	CreatedAt        time.Time      `json:"createdAt"`
}

type NewOrder struct {
	OrderNumber      string         `json:"orderNumber"`
	Destination      Location       `json:"destination"`
	RequiredCapacity int            `json:"requiredCapacity"`
	DeliveryWindow   DeliveryWindow `json:"deliveryWindow"`
	Priority         string         `json:"priority"`
	Products         []Product      `json:"products"`
}

type CompatibleVehicles struct {
	Order    Order     `json:"order"`
	Vehicles []Vehicle `json:"vehicles"`
	Count    int       `json:"count"`
}

type Stop struct {
	ID            uuid.UUID  `json:"id"`
	Location      Location   `json:"location"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	ScheduledTime time.Time  `json:"scheduledTime"`
	ActualTime    *time.Time `json:"actualTime,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

type Delivery struct {
	ID            uuid.UUID  `json:"id"`
	OrderID       uuid.UUID  `json:"orderId"`
	VehicleID     uuid.UUID  `json:"vehicleId"`
	OrderNumber   string     `json:"orderNumber"`
	Vehicle       Vehicle    `json:"vehicle"`
	Route         string     `json:"route"`
	Status        string     `json:"status"`
	Progress      int        `json:"progress"`
	ETA           time.Time  `json:"eta"`
	StartTime     time.Time  `json:"startTime"`
	CompletedTime *time.Time `json:"completedTime,omitempty"`
	Stops         []Stop     `json:"stops"`
}

type DeliveryList struct {
	Deliveries []Delivery `json:"deliveries"`
	Tabs       []Tab      `json:"tabs"`
}

type DirectAssignment struct {
	OrderID   uuid.UUID  `json:"orderId"`
	VehicleID *uuid.UUID `json:"vehicleId,omitempty"`
	Auto      bool       `json:"auto"`
}

type AssignmentResult struct {
	OrderID    uuid.UUID `json:"orderId"`
	VehicleID  uuid.UUID `json:"vehicleId"`
	DeliveryID uuid.UUID `json:"deliveryId"`
}

type SelectOrder struct {
	OrderID uuid.UUID `json:"orderId"`
}

type SelectVehicle struct {
	VehicleID uuid.UUID `json:"vehicleId"`
}

type AssignmentSession struct {
	ID                 uuid.UUID `json:"id"`
	Step               string    `json:"step"`
	StepNumber         int       `json:"stepNumber"`
	SelectedOrder      *Order    `json:"selectedOrder,omitempty"`
	SelectedVehicle    *Vehicle  `json:"selectedVehicle,omitempty"`
	PendingOrders      []Order   `json:"pendingOrders,omitempty"`
	CompatibleVehicles []Vehicle `json:"compatibleVehicles,omitempty"`
}

type LoadItem struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	CrateCount  int    `json:"crateCount"`
	IsLoaded    bool   `json:"isLoaded"`
}

type LoadSummary struct {
	LoadedCount   int `json:"loadedCount"`
	TotalItems    int `json:"totalItems"`
	TotalWeightKg int `json:"totalWeightKg"`
	TotalCrates   int `json:"totalCrates"`
}

type LoadChecklist struct {
	Vehicle Vehicle     `json:"vehicle"`
	Mode    string      `json:"mode"`
	Items   []LoadItem  `json:"items"`
	Summary LoadSummary `json:"summary"`
}

type LoadMode struct {
	Mode string `json:"mode"`
}

type LoadConfirmation struct {
	VehicleID uuid.UUID   `json:"vehicleId"`
	Mode      string      `json:"mode"`
	Items     []LoadItem  `json:"items"`
	Summary   LoadSummary `json:"summary"`
}

type KPIs struct {
	TotalFleet       int `json:"totalFleet"`
	AvailableNow     int `json:"availableNow"`
	ActiveDeliveries int `json:"activeDeliveries"`
	PendingOrders    int `json:"pendingOrders"`
	UnderMaintenance int `json:"underMaintenance"`
}

type FleetMetrics struct {
	TotalVehicles      int            `json:"totalVehicles"`
	StatusCounts       map[string]int `json:"statusCounts"`
	TotalCapacity      int            `json:"totalCapacity"`
	TotalLoad          int            `json:"totalLoad"`
	UtilizationPercent int            `json:"utilizationPercent"`
	AvailablePercent   int            `json:"availablePercent"`
}

type DeliveryStatus struct {
	StatusCounts   map[string]int `json:"statusCounts"`
	ActiveCount    int            `json:"activeCount"`
	CompletedCount int            `json:"completedCount"`
	OnTimeRate     int            `json:"onTimeRate"`
}

type Dashboard struct {
	KPIs             KPIs           `json:"kpis"`
	Fleet            FleetMetrics   `json:"fleet"`
	DeliveryStatus   DeliveryStatus `json:"deliveryStatus"`
	RecentDeliveries []Delivery     `json:"recentDeliveries"`
}

type Tracker struct {
	Vehicles       []Vehicle  `json:"vehicles"`
	Routes         []Delivery `json:"routes"`
	InTransitCount int        `json:"inTransitCount"`
	DelayedCount   int        `json:"delayedCount"`
}

func toLocation(l kernel.Location) Location {
	return Location{Lat: l.Lat(), Lng: l.Lng(), Address: l.Address()}
}

func toVehicle(v *vehicle.Vehicle) Vehicle {
	d := v.Driver()
	return Vehicle{
		ID:                 v.ID().Bytes(),
		VehicleNumber:      v.Number(),
		Type:               v.Type(),
		Capacity:           v.Capacity(),
		CurrentLoad:        v.CurrentLoad(),
		CapacityPercentage: v.CapacityPercentage(),
		Status:             v.Status().String(),
		Driver: Driver{
			ID:            d.ID().Bytes(),
			Name:          d.Name(),
			Phone:         d.Phone(),
			LicenseNumber: d.LicenseNumber(),
		},
		Location:    toLocation(v.Location()),
		LastUpdated: v.LastUpdated(),
	}
}

func toVehicles(vs []*vehicle.Vehicle) []Vehicle {
	out := make([]Vehicle, len(vs))
	for i, v := range vs {
		out[i] = toVehicle(v)
	}
	return out
}

func snapshotToVehicle(s delivery.VehicleSnapshot) Vehicle {
	pct := 0.0
	if s.Capacity > 0 {
		pct = float64(s.CurrentLoad) / float64(s.Capacity) * 100
	}
	return Vehicle{
		ID:                 s.ID.Bytes(),
		VehicleNumber:      s.Number,
		Type:               s.Type,
		Capacity:           s.Capacity,
		CurrentLoad:        s.CurrentLoad,
		CapacityPercentage: pct,
		Status:             s.Status.String(),
		Driver: Driver{
			Name:          s.DriverName,
			Phone:         s.DriverPhone,
			LicenseNumber: s.DriverLicense,
		},
		Location:    toLocation(s.Location),
		LastUpdated: s.CapturedAt,
	}
}

func toOrder(o *order.Order) Order {
	products := o.Products()
	ps := make([]Product, len(products))
	for i, p := range products {
		ps[i] = Product{
			ID:         p.ID().Bytes(),
			Name:       p.Name(),
			Type:       string(p.Type()),
			Quantity:   p.Quantity(),
			Unit:       p.Unit(),
			CrateCount: p.CrateCount(),
		}
	}
	return Order{
		ID:               o.ID().Bytes(),
		OrderNumber:      o.Number(),
		Products:         ps,
		Destination:      toLocation(o.Destination()),
		RequiredCapacity: o.RequiredCapacity(),
		DeliveryWindow: DeliveryWindow{
			Start: o.DeliveryWindow().Start(),
			End:   o.DeliveryWindow().End(),
		},
		Priority:  o.Priority().String(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
	}
}

func toOrders(orders []*order.Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = toOrder(o)
	}
	return out
}

func toDelivery(d *delivery.Delivery) Delivery {
	stops := d.Stops()
	ss := make([]Stop, len(stops))
	for i, s := range stops {
		ss[i] = Stop{
			ID:            s.ID().Bytes(),
			Location:      toLocation(s.Location()),
			Type:          string(s.Type()),
			Status:        string(s.Status()),
			ScheduledTime: s.ScheduledTime(),
			Notes:         s.Notes(),
		}
		if at, ok := s.ActualTime(); ok {
			ss[i].ActualTime = &at
		}
	}

	out := Delivery{
		ID:          d.ID().Bytes(),
		OrderID:     d.OrderID().Bytes(),
		VehicleID:   d.VehicleID().Bytes(),
		OrderNumber: d.OrderNumber(),
		Vehicle:     snapshotToVehicle(d.Vehicle()),
		Route:       d.Route(),
		Status:      d.Status().String(),
		Progress:    d.Progress(),
		ETA:         d.ETA(),
		StartTime:   d.StartTime(),
		Stops:       ss,
	}
	if at, ok := d.CompletedTime(); ok {
		out.CompletedTime = &at
	}
	return out
}

func toDeliveries(ds []*delivery.Delivery) []Delivery {
	out := make([]Delivery, len(ds))
	for i, d := range ds {
		out[i] = toDelivery(d)
	}
	return out
}

func toTabs(tabs []queries.TabCount) []Tab {
	out := make([]Tab, len(tabs))
	for i, t := range tabs {
		out[i] = Tab{Tab: t.Tab, Count: t.Count}
	}
	return out
}

func toAssignmentResult(r commands.AssignVehicleResult) AssignmentResult {
	return AssignmentResult{
		OrderID:    r.OrderID.Bytes(),
		VehicleID:  r.VehicleID.Bytes(),
		DeliveryID: r.DeliveryID.Bytes(),
	}
}

func toAssignmentSession(r queries.GetAssignmentSessionQueryResponse) AssignmentSession {
	out := AssignmentSession{
		ID:         r.Session.ID().Bytes(),
		Step:       string(r.Session.Step()),
		StepNumber: r.Session.Step().Number(),
	}
	if r.SelectedOrder != nil {
		o := toOrder(r.SelectedOrder)
		out.SelectedOrder = &o
	}
	if r.SelectedVehicle != nil {
		v := toVehicle(r.SelectedVehicle)
		out.SelectedVehicle = &v
	}
	if r.PendingOrders != nil {
		out.PendingOrders = toOrders(r.PendingOrders)
	}
	if r.CompatibleVehicles != nil {
		out.CompatibleVehicles = toVehicles(r.CompatibleVehicles)
	}
	return out
}

func toLoadItems(items []loadcheck.Item) []LoadItem {
	out := make([]LoadItem, len(items))
	for i, it := range items {
		out[i] = LoadItem{
			ID:          it.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			CrateCount:  it.CrateCount,
			IsLoaded:    it.IsLoaded,
		}
	}
	return out
}

func toLoadSummary(s loadcheck.Summary) LoadSummary {
	return LoadSummary{
		LoadedCount:   s.LoadedCount,
		TotalItems:    s.TotalItems,
		TotalWeightKg: s.TotalWeightKg,
		TotalCrates:   s.TotalCrates,
	}
}

func toLoadChecklist(r queries.GetLoadChecklistQueryResponse) LoadChecklist {
	return LoadChecklist{
		Vehicle: toVehicle(r.Vehicle),
		Mode:    string(r.Checklist.Mode()),
		Items:   toLoadItems(r.Checklist.Items()),
		Summary: toLoadSummary(r.Summary),
	}
}

func toLoadConfirmation(c loadcheck.Confirmation) LoadConfirmation {
	return LoadConfirmation{
		VehicleID: c.VehicleID.Bytes(),
		Mode:      string(c.Mode),
		Items:     toLoadItems(c.Items),
		Summary:   toLoadSummary(c.Summary),
	}
}

func toDashboard(r queries.GetDashboardQueryResponse) Dashboard {
	fleetCounts := make(map[string]int, len(r.Fleet.StatusCounts))
	for st, n := range r.Fleet.StatusCounts {
		fleetCounts[st.String()] = n
	}
	deliveryCounts := make(map[string]int, len(r.DeliveryStatus.StatusCounts))
	for st, n := range r.DeliveryStatus.StatusCounts {
		deliveryCounts[st.String()] = n
	}

	return Dashboard{
		KPIs: KPIs(r.KPIs),
		Fleet: FleetMetrics{
			TotalVehicles:      r.Fleet.TotalVehicles,
			StatusCounts:       fleetCounts,
			TotalCapacity:      r.Fleet.TotalCapacity,
			TotalLoad:          r.Fleet.TotalLoad,
			UtilizationPercent: r.Fleet.UtilizationPercent,
			AvailablePercent:   r.Fleet.AvailablePercent,
		},
		DeliveryStatus: DeliveryStatus{
			StatusCounts:   deliveryCounts,
			ActiveCount:    r.DeliveryStatus.ActiveCount,
			CompletedCount: r.DeliveryStatus.CompletedCount,
			OnTimeRate:     r.DeliveryStatus.OnTimeRate,
		},
		RecentDeliveries: toDeliveries(r.RecentDeliveries),
	}
}

func toTracker(r queries.GetTrackerQueryResponse) Tracker {
	return Tracker{
		Vehicles:       toVehicles(r.Vehicles),
		Routes:         toDeliveries(r.Routes),
		InTransitCount: r.InTransitCount,
		DelayedCount:   r.DelayedCount,
	}
}
