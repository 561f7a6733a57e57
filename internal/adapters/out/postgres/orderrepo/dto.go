// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Products are stored in their own table and loaded with the order.
package orderrepo

import (
	"time"

	"logistics/internal/adapters/out/postgres/vehiclerepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID               uuid.UUID               `gorm:"type:uuid;primaryKey"`
	Seq              int64                   `gorm:"type:bigserial;<-:false"`
	Number           string                  `gorm:"type:varchar(32);not null;uniqueIndex"`
	Destination      vehiclerepo.LocationDTO `gorm:"embedded;embeddedPrefix:destination_"`
	RequiredCapacity int                     `gorm:"type:int;not null"`
	WindowStart      time.Time               `gorm:"not null"`
	WindowEnd        time.Time               `gorm:"not null"`
	Priority         int                     `gorm:"type:smallint;not null"`
	Status           int                     `gorm:"type:smallint;not null;index"`
	CreatedAt        time.Time               `gorm:"not null"`
	Products         []ProductDTO            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductDTO is one line item of an order.
type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Position   int       `gorm:"type:int;not null"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Type       string    `gorm:"type:varchar(32);not null"`
	Quantity   int       `gorm:"type:int;not null"`
	Unit       string    `gorm:"type:varchar(16);not null"`
	CrateCount int       `gorm:"type:int;not null"`
}

func (ProductDTO) TableName() string {
	return "order_products"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	products := make([]ProductDTO, 0, len(o.Products()))
	for i, p := range o.Products() {
		products = append(products, ProductDTO{
			ID:         p.ID().Bytes(),
			OrderID:    orderID,
			Position:   i,
			Name:       p.Name(),
			Type:       string(p.Type()),
			Quantity:   p.Quantity(),
			Unit:       p.Unit(),
			CrateCount: p.CrateCount(),
		})
	}

	return OrderDTO{
		ID:               orderID,
		Number:           o.Number(),
		Destination:      vehiclerepo.LocationFromDomain(o.Destination()),
		RequiredCapacity: o.RequiredCapacity(),
		WindowStart:      o.DeliveryWindow().Start(),
		WindowEnd:        o.DeliveryWindow().End(),
		Priority:         int(o.Priority()),
		Status:           int(o.Status()),
		CreatedAt:        o.CreatedAt(),
		Products:         products,
	}
}

// toDomain expects Products sorted by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	destination, err := dto.Destination.ToDomain()
	if err != nil {
		return nil, err
	}

	window, err := order.NewDeliveryWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	products := make([]order.Product, 0, len(dto.Products))
	for _, p := range dto.Products {
		productID, idErr := kernel.UUIDFromBytes(p.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		product, productErr := order.NewProduct(productID, p.Name, order.ProductType(p.Type), p.Quantity, p.Unit, p.CrateCount)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	return order.RestoreOrder(id, dto.Number, products, destination, dto.RequiredCapacity, window,
		order.Priority(dto.Priority), order.Status(dto.Status), dto.CreatedAt)
}
