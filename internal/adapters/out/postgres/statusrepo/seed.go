package statusrepo

import (
	"context"

	"restaurant/internal/core/domain/model/cashregister"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/command"
	"restaurant/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type definition struct {
	kind        catalog.Kind
	key         string
	name        string
	description string
}

// Defaults is the catalog the service ships with. Every key the engines switch on is
// present; names and descriptions are only display data.
func Defaults() ([]catalog.Entry, error) {
	defs := []definition{
		{catalog.CommandStatus, command.Open.Key(), "Open", "Command is accepting orders"},
		{catalog.CommandStatus, command.Paying.Key(), "Paying", "Bill was requested"},
		{catalog.CommandStatus, command.Closed.Key(), "Closed", "Bill was paid"},
		{catalog.CommandStatus, command.Canceled.Key(), "Canceled", "Command was canceled"},
		{catalog.OrderStatus, order.Open.Key(), "Open", "Order was placed"},
		{catalog.OrderStatus, order.InPreparation.Key(), "In preparation", "Kitchen is preparing the order"},
		{catalog.OrderStatus, order.Delivered.Key(), "Delivered", "Order reached the table"},
		{catalog.OrderStatus, order.Canceled.Key(), "Canceled", "Order was canceled"},
		{catalog.SessionStatus, cashregister.SessionOpen.Key(), "Open", "Cash register is open"},
		{catalog.SessionStatus, cashregister.SessionClosed.Key(), "Closed", "Cash register was closed"},
		{catalog.TableReservationStatus, "reserved", "Reserved", "Table is reserved"},
		{catalog.TableReservationStatus, "seated", "Seated", "Guests are seated"},
		{catalog.TableReservationStatus, "no_show", "No show", "Guests did not arrive"},
		{catalog.TableReservationStatus, "canceled", "Canceled", "Reservation was canceled"},
	}

	entries := make([]catalog.Entry, 0, len(defs))
	for _, d := range defs {
		e, err := catalog.NewEntry(d.kind, d.key, d.name, d.description)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Seed inserts the default catalog, leaving entries that already exist untouched.
func Seed(ctx context.Context, db *gorm.DB) error {
	entries, err := Defaults()
	if err != nil {
		return err
	}

	dtos := make([]StatusDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, fromDomain(e))
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "status_key"}},
			DoNothing: true,
		}).
		Create(&dtos).Error
}
