package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"autohaul/internal/entities"
	"autohaul/internal/service/booking"
)

type mock struct {
	*MockPaymentGateway
	*MockShipmentService
	*MockPricingFactory
}

func newMock(ctrl *gomock.Controller) *mock {
	return &mock{
		MockPaymentGateway:  NewMockPaymentGateway(ctrl),
		MockShipmentService: NewMockShipmentService(ctrl),
		MockPricingFactory:  NewMockPricingFactory(ctrl),
	}
}

func newWorkflow(t *testing.T, m *mock) *booking.Workflow {
	t.Helper()

	sessions := booking.NewSessions(m.MockPricingFactory, m.MockPaymentGateway, m.MockShipmentService)
	workflow, err := sessions.Acquire("client-42")
	require.NoError(t, err)
	return workflow
}

func ptr[T any](v T) *T {
	return &v
}

// fillValidDraft заполняет все девять шагов валидными данными.
func fillValidDraft(t *testing.T, w *booking.Workflow) {
	t.Helper()

	steps := []struct {
		step  entities.BookingStep
		input entities.StepInput
	}{
		{entities.StepCustomer, entities.StepInput{Customer: &entities.CustomerStep{
			FullName: ptr("Иван Петров"),
			Email:    ptr("ivan@example.com"),
			Phone:    ptr("(212) 555-0123"),
		}}},
		{entities.StepVehicle, entities.StepInput{Vehicle: &entities.VehicleStep{
			Make:  ptr("Toyota"),
			Model: ptr("Camry"),
			Year:  ptr(2020),
		}}},
		{entities.StepPickup, entities.StepInput{Pickup: &entities.StopStep{
			Address:      ptr("Нью-Йорк, 5-я авеню, 1"),
			ContactName:  ptr("Анна"),
			ContactPhone: ptr("212-555-0199"),
		}}},
		{entities.StepDelivery, entities.StepInput{Delivery: &entities.StopStep{
			Address:      ptr("Лос-Анджелес, бульвар Сансет, 100"),
			ContactName:  ptr("Борис"),
			ContactPhone: ptr("310-555-0142"),
		}}},
		{entities.StepTowing, entities.StepInput{Towing: &entities.TowingStep{
			Operable: ptr(true),
		}}},
		{entities.StepInsurance, entities.StepInput{Insurance: &entities.InsuranceStep{
			PolicyNumber: ptr("POL-2026-001"),
		}}},
		{entities.StepVisual, entities.StepInput{Visual: &entities.VisualStep{
			ExteriorPhotoRefs: []string{"https://cdn.example.com/photos/ext-1.jpg"},
			InteriorPhotoRefs: []string{"https://cdn.example.com/photos/int-1.jpg"},
		}}},
		{entities.StepTerms, entities.StepInput{Terms: &entities.TermsStep{
			TermsAccepted:        ptr(true),
			CancellationAccepted: ptr(true),
			Signature:            ptr("Иван Петров"),
		}}},
		{entities.StepPayment, entities.StepInput{Payment: &entities.PaymentStep{
			Method: ptr("card"),
		}}},
	}

	for _, s := range steps {
		result, err := w.UpdateStep(s.step, s.input)
		require.NoError(t, err)
		require.True(t, result.Valid, "step %s expected valid, missing: %v", s.step, result.Missing)
	}
}

// advanceToPayment проходит мастер до последнего шага.
func advanceToPayment(t *testing.T, w *booking.Workflow) {
	t.Helper()

	for i := 0; i < len(entities.BookingSteps)-1; i++ {
		_, err := w.Next()
		require.NoError(t, err)
	}
	require.Equal(t, entities.StepPayment, w.CurrentStep())
}

func TestWorkflow_UpdateStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		step            entities.BookingStep
		input           entities.StepInput
		expectedValid   bool
		expectedMissing []string
		expectedErr     error
	}{
		{
			name: "Валидные данные заказчика проходят проверку",
			step: entities.StepCustomer,
			input: entities.StepInput{Customer: &entities.CustomerStep{
				FullName: ptr("Иван Петров"),
				Email:    ptr("ivan@example.com"),
				Phone:    ptr("+1 (212) 555-0123"),
			}},
			expectedValid: true,
		},
		{
			name: "Почта без домена помечает поле email",
			step: entities.StepCustomer,
			input: entities.StepInput{Customer: &entities.CustomerStep{
				FullName: ptr("Иван Петров"),
				Email:    ptr("ivan@"),
				Phone:    ptr("2125550123"),
			}},
			expectedValid:   false,
			expectedMissing: []string{"email"},
		},
		{
			name: "Телефон с кодом страны нормализуется до десяти цифр",
			step: entities.StepCustomer,
			input: entities.StepInput{Customer: &entities.CustomerStep{
				FullName: ptr("Иван Петров"),
				Email:    ptr("ivan@example.com"),
				Phone:    ptr("1-212-555-0123"),
			}},
			expectedValid: true,
		},
		{
			name: "Слишком короткий телефон помечает поле phone",
			step: entities.StepCustomer,
			input: entities.StepInput{Customer: &entities.CustomerStep{
				FullName: ptr("Иван Петров"),
				Email:    ptr("ivan@example.com"),
				Phone:    ptr("555-0123"),
			}},
			expectedValid:   false,
			expectedMissing: []string{"phone"},
		},
		{
			name: "Имя из одних пробелов равнозначно отсутствующему",
			step: entities.StepCustomer,
			input: entities.StepInput{Customer: &entities.CustomerStep{
				FullName: ptr("   "),
				Email:    ptr("ivan@example.com"),
				Phone:    ptr("2125550123"),
			}},
			expectedValid:   false,
			expectedMissing: []string{"full_name"},
		},
		{
			name: "Год выпуска старше нижней границы отклоняется",
			step: entities.StepVehicle,
			input: entities.StepInput{Vehicle: &entities.VehicleStep{
				Make:  ptr("ГАЗ"),
				Model: ptr("21"),
				Year:  ptr(1965),
			}},
			expectedValid:   false,
			expectedMissing: []string{"year"},
		},
		{
			name: "Следующий модельный год допустим",
			step: entities.StepVehicle,
			input: entities.StepInput{Vehicle: &entities.VehicleStep{
				Make:  ptr("Toyota"),
				Model: ptr("Camry"),
				Year:  ptr(time.Now().Year() + 1),
			}},
			expectedValid: true,
		},
		{
			name: "Год из далекого будущего отклоняется",
			step: entities.StepVehicle,
			input: entities.StepInput{Vehicle: &entities.VehicleStep{
				Make:  ptr("Toyota"),
				Model: ptr("Camry"),
				Year:  ptr(time.Now().Year() + 2),
			}},
			expectedValid:   false,
			expectedMissing: []string{"year"},
		},
		{
			name: "Окно погрузки с концом раньше начала отклоняется",
			step: entities.StepPickup,
			input: entities.StepInput{Pickup: &entities.StopStep{
				Address:      ptr("Нью-Йорк"),
				ContactName:  ptr("Анна"),
				ContactPhone: ptr("2125550199"),
				WindowStart:  ptr(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)),
				WindowEnd:    ptr(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
			}},
			expectedValid:   false,
			expectedMissing: []string{"window"},
		},
		{
			name: "Неисправная машина без оборудования отклоняется",
			step: entities.StepTowing,
			input: entities.StepInput{Towing: &entities.TowingStep{
				Operable: ptr(false),
			}},
			expectedValid:   false,
			expectedMissing: []string{"equipment"},
		},
		{
			name: "Неисправная машина с лебедкой проходит проверку",
			step: entities.StepTowing,
			input: entities.StepInput{Towing: &entities.TowingStep{
				Operable:  ptr(false),
				Equipment: ptr("winch"),
			}},
			expectedValid: true,
		},
		{
			name: "Неподтвержденные условия помечают оба флага и подпись",
			step: entities.StepTerms,
			input: entities.StepInput{Terms: &entities.TermsStep{
				TermsAccepted: ptr(false),
			}},
			expectedValid:   false,
			expectedMissing: []string{"terms_accepted", "cancellation_accepted", "signature"},
		},
		{
			name:        "Обновление с данными другого шага отклоняется",
			step:        entities.StepCustomer,
			input:       entities.StepInput{Vehicle: &entities.VehicleStep{Make: ptr("Toyota")}},
			expectedErr: booking.ErrStepDataMismatch,
		},
		{
			name:        "Неизвестный шаг отклоняется",
			step:        entities.BookingStep("warehouse"),
			input:       entities.StepInput{},
			expectedErr: booking.ErrUnknownStep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			m := newMock(ctrl)
			workflow := newWorkflow(t, m)

			result, err := workflow.UpdateStep(tt.step, tt.input)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedValid, result.Valid)
			if len(tt.expectedMissing) > 0 {
				assert.Equal(t, tt.expectedMissing, result.Missing)
			}
			assert.Equal(t, tt.expectedValid, workflow.IsStepValid(tt.step))
		})
	}
}

func TestWorkflow_Navigation(t *testing.T) {
	t.Parallel()

	t.Run("Переход вперед закрыт пока текущий шаг не валиден", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		_, err := workflow.Next()
		require.ErrorIs(t, err, booking.ErrStepNotValid)
		assert.Equal(t, entities.StepCustomer, workflow.CurrentStep())
	})

	t.Run("Назад с первого шага некуда", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		_, err := workflow.Previous()
		require.ErrorIs(t, err, booking.ErrAlreadyFirstStep)
	})

	t.Run("Полный проход мастера до последнего шага", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		fillValidDraft(t, workflow)
		advanceToPayment(t, workflow)

		_, err := workflow.Next()
		require.ErrorIs(t, err, booking.ErrAlreadyLastStep)
	})

	t.Run("Назад и снова вперед не теряет введенные данные", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		fillValidDraft(t, workflow)

		step, err := workflow.Next()
		require.NoError(t, err)
		require.Equal(t, entities.StepVehicle, step)

		step, err = workflow.Previous()
		require.NoError(t, err)
		require.Equal(t, entities.StepCustomer, step)

		snapshot := workflow.Snapshot()
		require.NotNil(t, snapshot.Vehicle.Make)
		assert.Equal(t, "Toyota", *snapshot.Vehicle.Make)
	})

	t.Run("Прыжок вперед через невалидный шаг запрещен", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		err := workflow.SetStep(entities.StepVisual)
		require.ErrorIs(t, err, booking.ErrStepNotValid)
		assert.Equal(t, entities.StepCustomer, workflow.CurrentStep())
	})

	t.Run("Прыжок вперед через сплошь валидные шаги разрешен", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		fillValidDraft(t, workflow)

		err := workflow.SetStep(entities.StepTerms)
		require.NoError(t, err)
		assert.Equal(t, entities.StepTerms, workflow.CurrentStep())
	})

	t.Run("Прыжок назад разрешен даже после порчи пройденного шага", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		fillValidDraft(t, workflow)

		err := workflow.SetStep(entities.StepPickup)
		require.NoError(t, err)

		result, err := workflow.UpdateStep(entities.StepCustomer, entities.StepInput{
			Customer: &entities.CustomerStep{Email: ptr("not-an-email")},
		})
		require.NoError(t, err)
		require.False(t, result.Valid)

		err = workflow.SetStep(entities.StepVehicle)
		require.NoError(t, err)
		assert.Equal(t, entities.StepVehicle, workflow.CurrentStep())

		err = workflow.SetStep(entities.StepCustomer)
		require.NoError(t, err)
		assert.Equal(t, entities.StepCustomer, workflow.CurrentStep())
	})

	t.Run("Прыжок на неизвестный шаг отклоняется", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		err := workflow.SetStep(entities.BookingStep("warehouse"))
		require.ErrorIs(t, err, booking.ErrUnknownStep)
	})
}

func TestWorkflow_AddPhotos(t *testing.T) {
	t.Parallel()

	t.Run("Параллельные загрузки дописывают а не перезаписывают", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		_, err := workflow.AddPhotos(booking.PhotoExterior, []string{"ext-1.jpg"})
		require.NoError(t, err)
		_, err = workflow.AddPhotos(booking.PhotoExterior, []string{"ext-2.jpg"})
		require.NoError(t, err)

		result, err := workflow.AddPhotos(booking.PhotoInterior, []string{"int-1.jpg"})
		require.NoError(t, err)
		assert.True(t, result.Valid)

		snapshot := workflow.Snapshot()
		assert.Equal(t, []string{"ext-1.jpg", "ext-2.jpg"}, snapshot.Visual.ExteriorPhotoRefs)
		assert.Equal(t, []string{"int-1.jpg"}, snapshot.Visual.InteriorPhotoRefs)
	})

	t.Run("Пустой список ссылок отклоняется", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		_, err := workflow.AddPhotos(booking.PhotoExterior, nil)
		require.ErrorIs(t, err, booking.ErrInvalidPhotoInput)
	})

	t.Run("Неизвестная секция фотоосмотра отклоняется", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		workflow := newWorkflow(t, newMock(ctrl))

		_, err := workflow.AddPhotos(booking.PhotoCategory("undercarriage"), []string{"x.jpg"})
		require.ErrorIs(t, err, booking.ErrInvalidPhotoInput)
	})
}

func TestWorkflow_Submit(t *testing.T) {
	t.Parallel()

	split := entities.PriceSplit{
		TotalCents:     75_000,
		UpfrontCents:   15_000,
		RemainderCents: 60_000,
	}

	t.Run("Успешный submit создает перевозку списывает предоплату и финализирует", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)
		workflow := newWorkflow(t, m)

		fillValidDraft(t, workflow)
		advanceToPayment(t, workflow)

		m.MockPricingFactory.EXPECT().EstimateTotal(gomock.Any()).Return(int64(75_000))
		m.MockPricingFactory.EXPECT().Split(int64(75_000)).Return(split)
		m.MockShipmentService.EXPECT().
			CreateDraft(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, modify entities.ShipmentModify) (*entities.Shipment, error) {
				require.NotNil(t, modify.ClientID)
				assert.Equal(t, "client-42", *modify.ClientID)
				require.NotNil(t, modify.Route)
				assert.Equal(t, "Нью-Йорк, 5-я авеню, 1", modify.Route.PickupAddress)
				require.NotNil(t, modify.PriceCents)
				assert.Equal(t, int64(75_000), *modify.PriceCents)
				return &entities.Shipment{ID: "ship-123", Status: entities.ShipmentDraft}, nil
			})
		m.MockPaymentGateway.EXPECT().
			AuthorizeUpfront(gomock.Any(), entities.UpfrontCharge{ShipmentID: "ship-123", AmountCents: 15_000}).
			Return(&entities.PaymentReference{Reference: "pay_7xK"}, nil)
		m.MockShipmentService.EXPECT().
			Finalize(gomock.Any(), "ship-123").
			Return(&entities.Shipment{ID: "ship-123", Status: entities.ShipmentPending}, nil)

		submission, err := workflow.Submit(context.Background())

		require.NoError(t, err)
		require.NotNil(t, submission)
		assert.Equal(t, "ship-123", submission.ShipmentID)
		assert.Equal(t, int64(75_000), submission.TotalCents)
		assert.Equal(t, int64(15_000), submission.UpfrontCents)
		assert.Equal(t, int64(60_000), submission.RemainderCents)

		// после успеха черновик сброшен на первый шаг
		assert.Equal(t, entities.StepCustomer, workflow.CurrentStep())
		assert.Empty(t, workflow.Snapshot().PendingShipmentID)
	})

	t.Run("Submit не с последнего шага отклоняется", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)
		workflow := newWorkflow(t, m)

		_, err := workflow.Submit(context.Background())
		require.ErrorIs(t, err, booking.ErrNotOnFinalStep)
	})

	t.Run("Submit перепроверяет все шаги и возвращает карту провалов", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)
		workflow := newWorkflow(t, m)

		fillValidDraft(t, workflow)
		advanceToPayment(t, workflow)

		// испортить пройденный шаг после прохода: сохраненным флагам не доверяем
		_, err := workflow.UpdateStep(entities.StepInsurance, entities.StepInput{
			Insurance: &entities.InsuranceStep{PolicyNumber: ptr("  ")},
		})
		require.NoError(t, err)

		_, err = workflow.Submit(context.Background())

		var validationErr *booking.ValidationFailure
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"policy_number"}, validationErr.Steps[entities.StepInsurance])
		assert.Len(t, validationErr.Steps, 1)
	})

	t.Run("Без выбранного способа оплаты перевозка не создается", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)
		workflow := newWorkflow(t, m)

		// восемь шагов валидны, способ оплаты не выбран
		steps := []struct {
			step  entities.BookingStep
			input entities.StepInput
		}{
			{entities.StepCustomer, entities.StepInput{Customer: &entities.CustomerStep{
				FullName: ptr("Иван Петров"),
				Email:    ptr("ivan@example.com"),
				Phone:    ptr("(212) 555-0123"),
			}}},
			{entities.StepVehicle, entities.StepInput{Vehicle: &entities.VehicleStep{
				Make:  ptr("Toyota"),
				Model: ptr("Camry"),
				Year:  ptr(2020),
			}}},
			{entities.StepPickup, entities.StepInput{Pickup: &entities.StopStep{
				Address:      ptr("Нью-Йорк"),
				ContactName:  ptr("Анна"),
				ContactPhone: ptr("2125550199"),
			}}},
			{entities.StepDelivery, entities.StepInput{Delivery: &entities.StopStep{
				Address:      ptr("Лос-Анджелес"),
				ContactName:  ptr("Борис"),
				ContactPhone: ptr("3105550142"),
			}}},
			{entities.StepTowing, entities.StepInput{Towing: &entities.TowingStep{
				Operable: ptr(true),
			}}},
			{entities.StepInsurance, entities.StepInput{Insurance: &entities.InsuranceStep{
				PolicyNumber: ptr("POL-2026-001"),
			}}},
			{entities.StepVisual, entities.StepInput{Visual: &entities.VisualStep{
				ExteriorPhotoRefs: []string{"ext-1"},
				InteriorPhotoRefs: []string{"int-1"},
			}}},
			{entities.StepTerms, entities.StepInput{Terms: &entities.TermsStep{
				TermsAccepted:        ptr(true),
				CancellationAccepted: ptr(true),
				Signature:            ptr("Иван Петров"),
			}}},
		}
		for _, s := range steps {
			result, err := workflow.UpdateStep(s.step, s.input)
			require.NoError(t, err)
			require.True(t, result.Valid)
		}
		advanceToPayment(t, workflow)

		_, err := workflow.Submit(context.Background())

		var validationErr *booking.ValidationFailure
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"payment_method"}, validationErr.Steps[entities.StepPayment])
		assert.Len(t, validationErr.Steps, 1)
		assert.Empty(t, workflow.Snapshot().PendingShipmentID)
	})

	t.Run("Отказ оплаты сохраняет черновик и перевозку для повторного submit", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)
		workflow := newWorkflow(t, m)

		fillValidDraft(t, workflow)
		advanceToPayment(t, workflow)

		declined := errors.New("card declined")

		m.MockPricingFactory.EXPECT().EstimateTotal(gomock.Any()).Return(int64(75_000)).Times(2)
		m.MockPricingFactory.EXPECT().Split(int64(75_000)).Return(split).Times(2)

		// перевозка создается ровно один раз
		m.MockShipmentService.EXPECT().
			CreateDraft(gomock.Any(), gomock.Any()).
			Return(&entities.Shipment{ID: "ship-123", Status: entities.ShipmentDraft}, nil)

		first := m.MockPaymentGateway.EXPECT().
			AuthorizeUpfront(gomock.Any(), gomock.Any()).
			Return(nil, declined)
		m.MockPaymentGateway.EXPECT().
			AuthorizeUpfront(gomock.Any(), entities.UpfrontCharge{ShipmentID: "ship-123", AmountCents: 15_000}).
			Return(&entities.PaymentReference{Reference: "pay_7xK"}, nil).
			After(first)

		m.MockShipmentService.EXPECT().
			Finalize(gomock.Any(), "ship-123").
			Return(&entities.Shipment{ID: "ship-123", Status: entities.ShipmentPending}, nil)

		_, err := workflow.Submit(context.Background())

		var paymentErr *booking.PaymentFailure
		require.ErrorAs(t, err, &paymentErr)
		assert.Equal(t, "ship-123", paymentErr.ShipmentID)
		assert.ErrorIs(t, err, declined)

		// черновик не сброшен, перевозка запомнена
		assert.Equal(t, entities.StepPayment, workflow.CurrentStep())
		assert.Equal(t, "ship-123", workflow.Snapshot().PendingShipmentID)

		submission, err := workflow.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ship-123", submission.ShipmentID)
	})

	t.Run("Ошибка создания перевозки не трогает черновик", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)
		workflow := newWorkflow(t, m)

		fillValidDraft(t, workflow)
		advanceToPayment(t, workflow)

		m.MockPricingFactory.EXPECT().EstimateTotal(gomock.Any()).Return(int64(75_000))
		m.MockPricingFactory.EXPECT().Split(int64(75_000)).Return(split)
		m.MockShipmentService.EXPECT().
			CreateDraft(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := workflow.Submit(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create shipment: connection refused")
		assert.Empty(t, workflow.Snapshot().PendingShipmentID)
		assert.Equal(t, entities.StepPayment, workflow.CurrentStep())
	})
}

func TestSessions(t *testing.T) {
	t.Parallel()

	t.Run("Повторный Acquire того же клиента возвращает тот же черновик", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)
		sessions := booking.NewSessions(m.MockPricingFactory, m.MockPaymentGateway, m.MockShipmentService)

		first, err := sessions.Acquire("client-42")
		require.NoError(t, err)

		_, err = first.UpdateStep(entities.StepCustomer, entities.StepInput{
			Customer: &entities.CustomerStep{FullName: ptr("Иван Петров")},
		})
		require.NoError(t, err)

		second, err := sessions.Acquire("client-42")
		require.NoError(t, err)

		snapshot := second.Snapshot()
		require.NotNil(t, snapshot.Customer.FullName)
		assert.Equal(t, "Иван Петров", *snapshot.Customer.FullName)
	})

	t.Run("Разные клиенты получают независимые черновики", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)
		sessions := booking.NewSessions(m.MockPricingFactory, m.MockPaymentGateway, m.MockShipmentService)

		first, err := sessions.Acquire("client-1")
		require.NoError(t, err)
		_, err = first.UpdateStep(entities.StepCustomer, entities.StepInput{
			Customer: &entities.CustomerStep{FullName: ptr("Иван Петров")},
		})
		require.NoError(t, err)

		second, err := sessions.Acquire("client-2")
		require.NoError(t, err)
		assert.Nil(t, second.Snapshot().Customer.FullName)
	})

	t.Run("Acquire с пустым ID клиента отклоняется", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)
		sessions := booking.NewSessions(m.MockPricingFactory, m.MockPaymentGateway, m.MockShipmentService)

		_, err := sessions.Acquire("   ")
		require.ErrorIs(t, err, booking.ErrInvalidClientID)
	})

	t.Run("Discard отбрасывает черновик клиента", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		m := newMock(ctrl)
		sessions := booking.NewSessions(m.MockPricingFactory, m.MockPaymentGateway, m.MockShipmentService)

		first, err := sessions.Acquire("client-42")
		require.NoError(t, err)
		_, err = first.UpdateStep(entities.StepCustomer, entities.StepInput{
			Customer: &entities.CustomerStep{FullName: ptr("Иван Петров")},
		})
		require.NoError(t, err)

		require.NoError(t, sessions.Discard("client-42"))

		fresh, err := sessions.Acquire("client-42")
		require.NoError(t, err)
		assert.Nil(t, fresh.Snapshot().Customer.FullName)
		assert.Equal(t, entities.StepCustomer, fresh.CurrentStep())
	})
}
