package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// generateCandidateSlots генерирует стартовые метки слотов на день.
// Слоты идут с фиксированным шагом от открытия; кандидат отбрасывается целиком,
// если услуга требуемой длительности не успеет завершиться до закрытия.
// Слот, заканчивающийся ровно в момент закрытия, остаётся.
func generateCandidateSlots(hours domain.BusinessHours, durationMinutes int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := hours.OpenTime

	for current.IsBefore(hours.CloseTime) {
		serviceEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}

		if !serviceEnd.IsAfter(hours.CloseTime) {
			slots = append(slots, current)
		}

		current, err = current.AddMinutes(hours.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// evaluateSlot проверяет один слот на пересечение с бронированиями дня.
// Бронирование с ID, равным excludeBookingID, пропускается: при редактировании
// бронирование не должно конфликтовать само с собой.
// Возвращает первое пересекающееся бронирование; граничащие интервалы
// (конец одного равен началу другого) пересечением не считаются.
func evaluateSlot(
	date time.Time,
	slotTime types.TimeString,
	durationMinutes int,
	excludeBookingID *string,
	bookings []*domain.Booking,
) (bool, *domain.Booking, error) {
	slotStart, err := slotTime.On(date)
	if err != nil {
		return false, nil, err
	}
	slotEnd := slotStart.Add(time.Duration(durationMinutes) * time.Minute)

	for _, b := range bookings {
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}

		if !b.IsOnDay(date) {
			continue
		}

		overlaps, err := b.OverlapsInterval(slotStart, slotEnd)
		if err != nil {
			// Бронирование с нечитаемой меткой времени не может конфликтовать
			continue
		}

		if overlaps {
			return false, b, nil
		}
	}

	return true, nil, nil
}
