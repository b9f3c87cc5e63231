package application

import "autohaul/internal/entities"

func ToDomain(a *ApplicationDB) *entities.JobApplication {
	if a == nil {
		return nil
	}
	return &entities.JobApplication{
		ID:          a.ID,
		ShipmentID:  a.ShipmentID,
		DriverID:    a.DriverID,
		Status:      entities.ApplicationStatusType(a.Status),
		AppliedAt:   a.AppliedAt,
		RespondedAt: a.RespondedAt,
		Notes:       a.Notes,
	}
}

func ToDomainList(models []ApplicationDB) []entities.JobApplication {
	applications := make([]entities.JobApplication, 0, len(models))
	for i := range models {
		applications = append(applications, *ToDomain(&models[i]))
	}
	return applications
}

func FromDomainModify(a *entities.ApplicationModify) *ApplicationModifyDB {
	if a == nil {
		return nil
	}
	applicationModifyDB := &ApplicationModifyDB{}

	if a.ID != nil {
		applicationModifyDB.ID = a.ID
	}
	if a.ShipmentID != nil {
		applicationModifyDB.ShipmentID = a.ShipmentID
	}
	if a.DriverID != nil {
		applicationModifyDB.DriverID = a.DriverID
	}
	if a.Status != nil {
		status := a.Status.String()
		applicationModifyDB.Status = &status
	}
	if a.AppliedAt != nil {
		applicationModifyDB.AppliedAt = a.AppliedAt
	}
	if a.RespondedAt != nil {
		applicationModifyDB.RespondedAt = a.RespondedAt
	}
	if a.Notes != nil {
		applicationModifyDB.Notes = a.Notes
	}

	return applicationModifyDB
}
