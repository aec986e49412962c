package order_test

import (
	"testing"

	"chefbook/internal/core/domain/model/order"
	"chefbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod(t *testing.T) {
	t.Run("should accept defined methods", func(t *testing.T) {
		for _, m := range []order.PaymentMethod{order.Cash, order.QRCode, order.UPI} {
			assert.NoError(t, m.Validate(), "method %s", m)
		}
	})

	t.Run("should reject unknown method", func(t *testing.T) {
		require.Error(t, order.MethodUnknown.Validate())
		require.Error(t, order.PaymentMethod(42).Validate())
	})

	t.Run("string representations", func(t *testing.T) {
		assert.Equal(t, "Cash", order.Cash.String())
		assert.Equal(t, "QRCode", order.QRCode.String())
		assert.Equal(t, "UPI", order.UPI.String())
		assert.Equal(t, "Unknown", order.MethodUnknown.String())
	})

	t.Run("parse from string", func(t *testing.T) {
		method, err := order.PaymentMethodFromString("UPI")
		require.NoError(t, err)
		assert.Equal(t, order.UPI, method)

		_, err = order.PaymentMethodFromString("Unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.PaymentMethodFromString("barter")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPaymentStatus_Validate(t *testing.T) {
	valid := []order.PaymentStatus{
		order.PaymentPending, order.PaymentProcessing, order.AwaitingVerification,
		order.PaymentCompleted, order.PaymentRejected, order.PaymentFailed,
		order.PaymentRefunded,
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), "status %s", s)
	}

	require.Error(t, order.PaymentUnknown.Validate())
	require.Error(t, order.PaymentStatus(42).Validate())
}

func TestPaymentStatus_SubmitForVerification(t *testing.T) {
	t.Run("should move pending payment to awaiting verification", func(t *testing.T) {
		next, err := order.PaymentPending.SubmitForVerification()

		require.NoError(t, err)
		assert.Equal(t, order.AwaitingVerification, next)
	})

	t.Run("should conflict from any other state", func(t *testing.T) {
		for _, from := range []order.PaymentStatus{
			order.PaymentProcessing, order.AwaitingVerification,
			order.PaymentCompleted, order.PaymentRejected,
			order.PaymentFailed, order.PaymentRefunded,
		} {
			_, err := from.SubmitForVerification()
			require.ErrorIs(t, err, errs.ErrConflict, "from %s", from)
		}
	})
}

func TestPaymentStatus_Verify(t *testing.T) {
	t.Run("should complete on verified", func(t *testing.T) {
		next, err := order.AwaitingVerification.Verify(true)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentCompleted, next)
	})

	t.Run("should reject on not verified", func(t *testing.T) {
		next, err := order.AwaitingVerification.Verify(false)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentRejected, next)
	})

	t.Run("should conflict when nothing awaits verification", func(t *testing.T) {
		for _, from := range []order.PaymentStatus{
			order.PaymentPending, order.PaymentProcessing,
			order.PaymentCompleted, order.PaymentRejected,
		} {
			_, err := from.Verify(true)
			require.ErrorIs(t, err, errs.ErrConflict, "from %s", from)
		}
	})
}

func TestPaymentStatus_MarkCompleted(t *testing.T) {
	t.Run("should complete from any unsettled state", func(t *testing.T) {
		for _, from := range []order.PaymentStatus{
			order.PaymentPending, order.PaymentProcessing,
			order.AwaitingVerification, order.PaymentRejected,
			order.PaymentFailed, order.PaymentRefunded,
		} {
			next, err := from.MarkCompleted()
			require.NoError(t, err, "from %s", from)
			assert.Equal(t, order.PaymentCompleted, next)
		}
	})

	t.Run("should conflict when already completed", func(t *testing.T) {
		_, err := order.PaymentCompleted.MarkCompleted()
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}
