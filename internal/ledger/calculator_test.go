package ledger

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
)

type stubSource struct {
	events []model.LedgerEvent
	err    error
}

func (s *stubSource) EventsForAccount(_ context.Context, _ int64) ([]model.LedgerEvent, error) {
	return s.events, s.err
}

func earning(amount string) model.LedgerEvent {
	return model.LedgerEvent{Kind: model.EventEarning, Amount: decimal.RequireFromString(amount)}
}

func adjustment(amount string, dir model.AdjustmentDirection) model.LedgerEvent {
	return model.LedgerEvent{Kind: model.EventManualAdjustment, Amount: decimal.RequireFromString(amount), Direction: dir}
}

func TestExpectedBalance(t *testing.T) {
	tests := []struct {
		name   string
		events []model.LedgerEvent
		want   string
	}{
		{
			name:   "no events",
			events: nil,
			want:   "0",
		},
		{
			name:   "earnings only",
			events: []model.LedgerEvent{earning("10"), earning("25.5"), earning("9.5")},
			want:   "45",
		},
		{
			name: "earnings minus withdrawal",
			events: []model.LedgerEvent{
				earning("20"), earning("25"),
				adjustment("5", model.AdjustmentWithdrawal),
			},
			want: "40",
		},
		{
			name: "deposits add and withdrawals subtract",
			events: []model.LedgerEvent{
				adjustment("3.25", model.AdjustmentDeposit),
				adjustment("1.25", model.AdjustmentWithdrawal),
			},
			want: "2",
		},
		{
			name: "withdrawals can drive the total negative",
			events: []model.LedgerEvent{
				earning("1"),
				adjustment("2.000001", model.AdjustmentWithdrawal),
			},
			want: "-1.000001",
		},
		{
			name: "micro amounts stay exact",
			events: []model.LedgerEvent{
				earning("0.000001"), earning("0.000001"), earning("0.000001"),
			},
			want: "0.000003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := NewCalculator(&stubSource{events: tt.events})
			require.NoError(t, err)

			got, err := calc.ExpectedBalance(context.Background(), 1)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestExpectedBalance_OrderIndependent(t *testing.T) {
	events := []model.LedgerEvent{
		earning("12.345678"),
		earning("0.000001"),
		adjustment("3.5", model.AdjustmentDeposit),
		adjustment("7.123456", model.AdjustmentWithdrawal),
		earning("100"),
	}

	calc, err := NewCalculator(&stubSource{events: events})
	require.NoError(t, err)
	want, err := calc.ExpectedBalance(context.Background(), 1)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.LedgerEvent, len(events))
		copy(shuffled, events)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		calc, err := NewCalculator(&stubSource{events: shuffled})
		require.NoError(t, err)
		got, err := calc.ExpectedBalance(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "iteration %d: got %s, want %s", i, got, want)
	}
}

func TestExpectedBalance_SourceFailurePropagates(t *testing.T) {
	calc, err := NewCalculator(&stubSource{err: errors.New("connection refused")})
	require.NoError(t, err)

	_, err = calc.ExpectedBalance(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewCalculator_RequiresSource(t *testing.T) {
	_, err := NewCalculator(nil)
	assert.Error(t, err)
}
