package shipment

import "autohaul/internal/entities"

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}
	return &entities.Shipment{
		ID:       s.ID,
		ClientID: s.ClientID,
		DriverID: s.DriverID,
		Status:   entities.ShipmentStatusType(s.Status),
		Route: entities.Route{
			PickupAddress:   s.PickupAddress,
			PickupLat:       s.PickupLat,
			PickupLon:       s.PickupLon,
			DeliveryAddress: s.DeliveryAddress,
			DeliveryLat:     s.DeliveryLat,
			DeliveryLon:     s.DeliveryLon,
		},
		PriceCents: s.PriceCents,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		ExpiresAt:  s.ExpiresAt,
	}
}

func ToDomainList(models []ShipmentDB) []entities.Shipment {
	shipments := make([]entities.Shipment, 0, len(models))
	for i := range models {
		shipments = append(shipments, *ToDomain(&models[i]))
	}
	return shipments
}

func FromDomainModify(s *entities.ShipmentModify) *ShipmentModifyDB {
	if s == nil {
		return nil
	}
	shipmentModifyDB := &ShipmentModifyDB{}

	if s.ID != nil {
		shipmentModifyDB.ID = s.ID
	}
	if s.ClientID != nil {
		shipmentModifyDB.ClientID = s.ClientID
	}
	if s.DriverID != nil {
		shipmentModifyDB.DriverID = s.DriverID
	}
	if s.Status != nil {
		status := s.Status.String()
		shipmentModifyDB.Status = &status
	}
	if s.Route != nil {
		shipmentModifyDB.PickupAddress = &s.Route.PickupAddress
		shipmentModifyDB.PickupLat = s.Route.PickupLat
		shipmentModifyDB.PickupLon = s.Route.PickupLon
		shipmentModifyDB.DeliveryAddress = &s.Route.DeliveryAddress
		shipmentModifyDB.DeliveryLat = s.Route.DeliveryLat
		shipmentModifyDB.DeliveryLon = s.Route.DeliveryLon
	}
	if s.PriceCents != nil {
		shipmentModifyDB.PriceCents = s.PriceCents
	}
	if s.ExpiresAt != nil {
		shipmentModifyDB.ExpiresAt = s.ExpiresAt
	}

	return shipmentModifyDB
}
