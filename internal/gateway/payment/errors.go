package payment

import (
	"errors"
	"fmt"
)

// ErrPaymentDeclined — провайдер отказал в списании. Не ретраится:
// повтор с той же картой даст тот же ответ.
var ErrPaymentDeclined = errors.New("payment declined")

// statusError сохраняет HTTP-код ответа провайдера для решения о ретрае
// и для метрик.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("payment provider returned status %d", e.code)
}
