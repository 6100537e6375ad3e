package check_slot

import (
	"context"

	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

type CheckSlotUseCase interface {
	CheckSlot(ctx context.Context, req *getAvailableSlots.CheckRequest) (*getAvailableSlots.CheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
