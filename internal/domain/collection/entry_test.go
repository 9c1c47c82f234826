package collection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	enrollmentID := uuid.New()
	actor := uuid.New()

	t.Run("creates valid entry with defaults", func(t *testing.T) {
		entry, err := NewEntry(enrollmentID, decimal.NewFromInt(500), "", time.Time{}, "", actor, actor)
		require.NoError(t, err)
		assert.Equal(t, PaymentCash, entry.Method)
		assert.False(t, entry.PaymentDate.IsZero())
		assert.Equal(t, actor, entry.CreatedBy)
		assert.Equal(t, 1, entry.GetVersion())
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewEntry(enrollmentID, decimal.Zero, PaymentCash, time.Now(), "", actor, actor)
		assert.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewEntry(enrollmentID, decimal.NewFromInt(-10), PaymentCash, time.Now(), "", actor, actor)
		assert.Error(t, err)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := NewEntry(enrollmentID, decimal.NewFromInt(10), "cheque", time.Now(), "", actor, actor)
		assert.Error(t, err)
	})

	t.Run("rejects missing enrollment", func(t *testing.T) {
		_, err := NewEntry(uuid.Nil, decimal.NewFromInt(10), PaymentCash, time.Now(), "", actor, actor)
		assert.Error(t, err)
	})
}

func TestCheckOverpayment(t *testing.T) {
	dec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name        string
		schemeTotal string
		alreadyPaid string
		amount      string
		wantErr     bool
	}{
		{"first payment within total", "1000.00", "0.00", "500.00", false},
		{"payment exactly to the total is allowed", "1000.00", "600.00", "400.00", false},
		{"one paisa over the total fails", "1000.00", "600.00", "400.01", true},
		{"payment over remaining headroom fails", "1000.00", "900.00", "200.00", true},
		{"full total in one payment is allowed", "1000.00", "0.00", "1000.00", false},
		{"fractional amounts stay exact", "100.00", "33.33", "66.67", false},
		{"fractional overshoot fails", "100.00", "33.34", "66.67", true},
		{"already fully paid rejects any amount", "1000.00", "1000.00", "0.01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckOverpayment(dec(tt.schemeTotal), dec(tt.alreadyPaid), dec(tt.amount))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("error message carries paid amount and headroom", func(t *testing.T) {
		err := CheckOverpayment(dec("1000.00"), dec("750.50"), dec("300.00"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "₹750.50")
		assert.Contains(t, err.Error(), "₹249.50")
	})

	t.Run("headroom never reported negative", func(t *testing.T) {
		err := CheckOverpayment(dec("1000.00"), dec("1200.00"), dec("1.00"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "₹0.00")
	})
}

func TestEntryApply(t *testing.T) {
	actor := uuid.New()
	newActor := uuid.New()

	makeEntry := func(t *testing.T) *Entry {
		entry, err := NewEntry(uuid.New(), decimal.NewFromInt(100), PaymentCash, time.Now(), "first", actor, actor)
		require.NoError(t, err)
		return entry
	}

	t.Run("amends amount and method", func(t *testing.T) {
		entry := makeEntry(t)
		amount := decimal.NewFromInt(150)
		method := PaymentUPI
		err := entry.Apply(EntryPatch{Amount: &amount, Method: &method}, newActor)
		require.NoError(t, err)
		assert.True(t, entry.Amount.Equal(amount))
		assert.Equal(t, PaymentUPI, entry.Method)
		assert.Equal(t, newActor, entry.UpdatedBy)
		assert.Equal(t, 2, entry.GetVersion())
	})

	t.Run("rejects non-positive amended amount", func(t *testing.T) {
		entry := makeEntry(t)
		amount := decimal.Zero
		err := entry.Apply(EntryPatch{Amount: &amount}, newActor)
		assert.Error(t, err)
	})

	t.Run("nil patch fields leave entry unchanged", func(t *testing.T) {
		entry := makeEntry(t)
		err := entry.Apply(EntryPatch{}, newActor)
		require.NoError(t, err)
		assert.True(t, entry.Amount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, "first", entry.Note)
	})
}
