package booking

import (
	"strings"
	"time"
	"unicode"

	"autohaul/internal/entities"
)

const (
	minVehicleYear    = 1980
	phoneDigitsLength = 10
)

// StepResult — вердикт валидации одного шага. Missing перечисляет и
// отсутствующие, и некорректно заполненные поля: для мастера это одно и то же —
// шаг не пройден, поле нужно исправить.
type StepResult struct {
	Valid   bool
	Missing []string
}

// validateStep проверяет один шаг по накопленному черновику. Чистая функция:
// черновик не мутирует, флаги валидности обновляет вызывающий.
func validateStep(step entities.BookingStep, draft *entities.BookingDraft) (StepResult, error) {
	switch step {
	case entities.StepCustomer:
		return validateCustomer(draft.Customer), nil
	case entities.StepVehicle:
		return validateVehicle(draft.Vehicle), nil
	case entities.StepPickup:
		return validateStop(draft.Pickup), nil
	case entities.StepDelivery:
		return validateStop(draft.Delivery), nil
	case entities.StepTowing:
		return validateTowing(draft.Towing), nil
	case entities.StepInsurance:
		return validateInsurance(draft.Insurance), nil
	case entities.StepVisual:
		return validateVisual(draft.Visual), nil
	case entities.StepTerms:
		return validateTerms(draft.Terms), nil
	case entities.StepPayment:
		return validatePayment(draft.Payment), nil
	default:
		return StepResult{}, ErrUnknownStep
	}
}

func validateCustomer(data entities.CustomerStep) StepResult {
	missing := make([]string, 0, 3)
	if isBlank(data.FullName) {
		missing = append(missing, "full_name")
	}
	if isBlank(data.Email) || !isValidEmail(*data.Email) {
		missing = append(missing, "email")
	}
	if data.Phone == nil || !isValidPhone(*data.Phone) {
		missing = append(missing, "phone")
	}
	return resultOf(missing)
}

func validateVehicle(data entities.VehicleStep) StepResult {
	missing := make([]string, 0, 3)
	if isBlank(data.Make) {
		missing = append(missing, "make")
	}
	if isBlank(data.Model) {
		missing = append(missing, "model")
	}
	// Год из будущего допустим на одну модель вперед: дилеры возят
	// следующий модельный год до его наступления.
	if data.Year == nil || *data.Year < minVehicleYear || *data.Year > time.Now().Year()+1 {
		missing = append(missing, "year")
	}
	return resultOf(missing)
}

func validateStop(data entities.StopStep) StepResult {
	missing := make([]string, 0, 4)
	if isBlank(data.Address) {
		missing = append(missing, "address")
	}
	if isBlank(data.ContactName) {
		missing = append(missing, "contact_name")
	}
	if data.ContactPhone == nil || !isValidPhone(*data.ContactPhone) {
		missing = append(missing, "contact_phone")
	}
	if data.WindowStart != nil && data.WindowEnd != nil && data.WindowEnd.Before(*data.WindowStart) {
		missing = append(missing, "window")
	}
	return resultOf(missing)
}

func validateTowing(data entities.TowingStep) StepResult {
	missing := make([]string, 0, 1)
	// Для неисправной машины обязательно указать погрузочное оборудование.
	if data.Operable == nil {
		missing = append(missing, "operable")
	} else if !*data.Operable && isBlank(data.Equipment) {
		missing = append(missing, "equipment")
	}
	return resultOf(missing)
}

func validateInsurance(data entities.InsuranceStep) StepResult {
	missing := make([]string, 0, 1)
	if isBlank(data.PolicyNumber) {
		missing = append(missing, "policy_number")
	}
	return resultOf(missing)
}

func validateVisual(data entities.VisualStep) StepResult {
	missing := make([]string, 0, 2)
	if len(data.ExteriorPhotoRefs) == 0 {
		missing = append(missing, "exterior_photos")
	}
	if len(data.InteriorPhotoRefs) == 0 {
		missing = append(missing, "interior_photos")
	}
	return resultOf(missing)
}

func validateTerms(data entities.TermsStep) StepResult {
	missing := make([]string, 0, 3)
	if data.TermsAccepted == nil || !*data.TermsAccepted {
		missing = append(missing, "terms_accepted")
	}
	if data.CancellationAccepted == nil || !*data.CancellationAccepted {
		missing = append(missing, "cancellation_accepted")
	}
	if isBlank(data.Signature) {
		missing = append(missing, "signature")
	}
	return resultOf(missing)
}

func validatePayment(data entities.PaymentStep) StepResult {
	missing := make([]string, 0, 1)
	if isBlank(data.Method) {
		missing = append(missing, "payment_method")
	}
	return resultOf(missing)
}

func resultOf(missing []string) StepResult {
	return StepResult{Valid: len(missing) == 0, Missing: missing}
}

func isValidClientID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// isBlank: строка из одних пробелов равнозначна отсутствующей.
func isBlank(value *string) bool {
	return value == nil || strings.TrimSpace(*value) == ""
}

func isValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	at := strings.Index(trimmed, "@")
	return at > 0 && at < len(trimmed)-1
}

// isValidPhone принимает любой пользовательский формат: скобки, дефисы и
// пробелы отбрасываются, ведущая единица (код страны) срезается. Валиден
// номер ровно из десяти цифр.
func isValidPhone(phone string) bool {
	digits := normalizePhone(phone)
	return len(digits) == phoneDigitsLength
}

func normalizePhone(phone string) string {
	var builder strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	digits := builder.String()
	if len(digits) == phoneDigitsLength+1 && digits[0] == '1' {
		digits = digits[1:]
	}
	return digits
}
