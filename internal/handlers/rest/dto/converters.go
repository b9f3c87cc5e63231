package dto

import "autohaul/internal/entities"

func FromDraft(draft entities.BookingDraft) BookingState {
	steps := make([]StepState, 0, len(entities.BookingSteps))
	for _, step := range entities.BookingSteps {
		steps = append(steps, StepState{
			Name:  step.String(),
			Valid: draft.Validity[step],
		})
	}

	state := BookingState{
		CurrentStep: draft.CurrentStep.String(),
		Steps:       steps,
		Customer: CustomerStep{
			FullName: draft.Customer.FullName,
			Email:    draft.Customer.Email,
			Phone:    draft.Customer.Phone,
		},
		Vehicle: VehicleStep{
			Make:  draft.Vehicle.Make,
			Model: draft.Vehicle.Model,
			Year:  draft.Vehicle.Year,
		},
		Pickup:   fromStop(draft.Pickup),
		Delivery: fromStop(draft.Delivery),
		Towing: TowingStep{
			Operable:  draft.Towing.Operable,
			Equipment: draft.Towing.Equipment,
		},
		Insurance: InsuranceStep{
			PolicyNumber: draft.Insurance.PolicyNumber,
			DocumentRefs: draft.Insurance.DocumentRefs,
		},
		Visual: VisualStep{
			ExteriorPhotoRefs: draft.Visual.ExteriorPhotoRefs,
			InteriorPhotoRefs: draft.Visual.InteriorPhotoRefs,
		},
		Terms: TermsStep{
			TermsAccepted:        draft.Terms.TermsAccepted,
			CancellationAccepted: draft.Terms.CancellationAccepted,
			Signature:            draft.Terms.Signature,
		},
		Payment: PaymentStep{
			Method: draft.Payment.Method,
		},
	}

	if draft.PendingShipmentID != "" {
		pending := draft.PendingShipmentID
		state.PendingShipmentID = &pending
	}

	return state
}

func fromStop(stop entities.StopStep) StopStep {
	return StopStep{
		Address:      stop.Address,
		Lat:          stop.Lat,
		Lon:          stop.Lon,
		ContactName:  stop.ContactName,
		ContactPhone: stop.ContactPhone,
		WindowStart:  stop.WindowStart,
		WindowEnd:    stop.WindowEnd,
	}
}

func FromShipment(shipmentEntity *entities.Shipment) Shipment {
	return Shipment{
		ID:       shipmentEntity.ID,
		ClientID: shipmentEntity.ClientID,
		DriverID: shipmentEntity.DriverID,
		Status:   shipmentEntity.Status.String(),
		Route: Route{
			PickupAddress:   shipmentEntity.Route.PickupAddress,
			PickupLat:       shipmentEntity.Route.PickupLat,
			PickupLon:       shipmentEntity.Route.PickupLon,
			DeliveryAddress: shipmentEntity.Route.DeliveryAddress,
			DeliveryLat:     shipmentEntity.Route.DeliveryLat,
			DeliveryLon:     shipmentEntity.Route.DeliveryLon,
		},
		PriceCents: shipmentEntity.PriceCents,
		CreatedAt:  shipmentEntity.CreatedAt,
		UpdatedAt:  shipmentEntity.UpdatedAt,
		ExpiresAt:  shipmentEntity.ExpiresAt,
	}
}

func FromApplication(applicationEntity *entities.JobApplication) Application {
	return Application{
		ID:          applicationEntity.ID,
		ShipmentID:  applicationEntity.ShipmentID,
		DriverID:    applicationEntity.DriverID,
		Status:      applicationEntity.Status.String(),
		AppliedAt:   applicationEntity.AppliedAt,
		RespondedAt: applicationEntity.RespondedAt,
		Notes:       applicationEntity.Notes,
	}
}
