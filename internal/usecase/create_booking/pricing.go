package create_booking

import "github.com/m04kA/GSO-BookingService/internal/domain"

// resolveAmount выбирает сумму: явная положительная сумма клиента,
// иначе тариф типа события. Для произвольного события сумма обязательна.
func resolveAmount(requested *float64, eventType *domain.EventType, hours float64) (float64, error) {
	if requested != nil && *requested > 0 {
		return *requested, nil
	}

	if eventType == nil {
		return 0, domain.NewValidationError(domain.ReasonInvalidAmount, "Amount is required for a custom event")
	}

	amount := eventType.AmountFor(hours)
	if amount <= 0 {
		return 0, domain.NewValidationError(domain.ReasonInvalidAmount, "Amount must be greater than zero")
	}
	return amount, nil
}

// requirePositiveFinal отклоняет бронь, которую скидка обнулила
func requirePositiveFinal(b *domain.Booking) error {
	if b.FinalAmount <= 0 {
		return domain.NewValidationError(domain.ReasonInvalidAmount, "Final amount must be greater than zero")
	}
	return nil
}
