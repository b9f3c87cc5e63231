package booking

import "autohaul/internal/entities"

// mergeStep накладывает частичное обновление на данные шага: заданные поля
// перезаписываются, незаданные сохраняют прежние значения. Слайсы считаются
// заданными, когда не nil, — пустой слайс явно очищает поле.
func mergeStep(draft *entities.BookingDraft, step entities.BookingStep, input entities.StepInput) error {
	switch step {
	case entities.StepCustomer:
		if input.Customer == nil {
			return ErrStepDataMismatch
		}
		mergeCustomer(&draft.Customer, *input.Customer)
	case entities.StepVehicle:
		if input.Vehicle == nil {
			return ErrStepDataMismatch
		}
		mergeVehicle(&draft.Vehicle, *input.Vehicle)
	case entities.StepPickup:
		if input.Pickup == nil {
			return ErrStepDataMismatch
		}
		mergeStop(&draft.Pickup, *input.Pickup)
	case entities.StepDelivery:
		if input.Delivery == nil {
			return ErrStepDataMismatch
		}
		mergeStop(&draft.Delivery, *input.Delivery)
	case entities.StepTowing:
		if input.Towing == nil {
			return ErrStepDataMismatch
		}
		mergeTowing(&draft.Towing, *input.Towing)
	case entities.StepInsurance:
		if input.Insurance == nil {
			return ErrStepDataMismatch
		}
		mergeInsurance(&draft.Insurance, *input.Insurance)
	case entities.StepVisual:
		if input.Visual == nil {
			return ErrStepDataMismatch
		}
		mergeVisual(&draft.Visual, *input.Visual)
	case entities.StepTerms:
		if input.Terms == nil {
			return ErrStepDataMismatch
		}
		mergeTerms(&draft.Terms, *input.Terms)
	case entities.StepPayment:
		if input.Payment == nil {
			return ErrStepDataMismatch
		}
		mergePayment(&draft.Payment, *input.Payment)
	default:
		return ErrUnknownStep
	}
	return nil
}

func mergeCustomer(dst *entities.CustomerStep, src entities.CustomerStep) {
	if src.FullName != nil {
		dst.FullName = src.FullName
	}
	if src.Email != nil {
		dst.Email = src.Email
	}
	if src.Phone != nil {
		dst.Phone = src.Phone
	}
}

func mergeVehicle(dst *entities.VehicleStep, src entities.VehicleStep) {
	if src.Make != nil {
		dst.Make = src.Make
	}
	if src.Model != nil {
		dst.Model = src.Model
	}
	if src.Year != nil {
		dst.Year = src.Year
	}
}

func mergeStop(dst *entities.StopStep, src entities.StopStep) {
	if src.Address != nil {
		dst.Address = src.Address
	}
	if src.Lat != nil {
		dst.Lat = src.Lat
	}
	if src.Lon != nil {
		dst.Lon = src.Lon
	}
	if src.ContactName != nil {
		dst.ContactName = src.ContactName
	}
	if src.ContactPhone != nil {
		dst.ContactPhone = src.ContactPhone
	}
	if src.WindowStart != nil {
		dst.WindowStart = src.WindowStart
	}
	if src.WindowEnd != nil {
		dst.WindowEnd = src.WindowEnd
	}
}

func mergeTowing(dst *entities.TowingStep, src entities.TowingStep) {
	if src.Operable != nil {
		dst.Operable = src.Operable
	}
	if src.Equipment != nil {
		dst.Equipment = src.Equipment
	}
}

func mergeInsurance(dst *entities.InsuranceStep, src entities.InsuranceStep) {
	if src.PolicyNumber != nil {
		dst.PolicyNumber = src.PolicyNumber
	}
	if src.DocumentRefs != nil {
		dst.DocumentRefs = src.DocumentRefs
	}
}

func mergeVisual(dst *entities.VisualStep, src entities.VisualStep) {
	if src.ExteriorPhotoRefs != nil {
		dst.ExteriorPhotoRefs = src.ExteriorPhotoRefs
	}
	if src.InteriorPhotoRefs != nil {
		dst.InteriorPhotoRefs = src.InteriorPhotoRefs
	}
}

func mergeTerms(dst *entities.TermsStep, src entities.TermsStep) {
	if src.TermsAccepted != nil {
		dst.TermsAccepted = src.TermsAccepted
	}
	if src.CancellationAccepted != nil {
		dst.CancellationAccepted = src.CancellationAccepted
	}
	if src.Signature != nil {
		dst.Signature = src.Signature
	}
}

func mergePayment(dst *entities.PaymentStep, src entities.PaymentStep) {
	if src.Method != nil {
		dst.Method = src.Method
	}
}

// snapshotDraft возвращает копию черновика для чтения вне мьютекса Workflow.
// Слайсы и карта копируются: у вызывающего не должно быть ссылок на
// внутреннее состояние.
func snapshotDraft(draft *entities.BookingDraft) entities.BookingDraft {
	copied := *draft

	copied.Validity = make(map[entities.BookingStep]bool, len(draft.Validity))
	for step, valid := range draft.Validity {
		copied.Validity[step] = valid
	}

	copied.Insurance.DocumentRefs = copySlice(draft.Insurance.DocumentRefs)
	copied.Visual.ExteriorPhotoRefs = copySlice(draft.Visual.ExteriorPhotoRefs)
	copied.Visual.InteriorPhotoRefs = copySlice(draft.Visual.InteriorPhotoRefs)

	return copied
}

func copySlice(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
