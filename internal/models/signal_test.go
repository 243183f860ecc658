package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSignal(t *testing.T) {
	tests := []struct {
		symbol, side string
		want         Signal
	}{
		{"btcusdt", "buy", Signal{Symbol: "BTCUSDT", Intent: IntentOpen, Side: SideBuy, Raw: "buy"}},
		{"ETHUSDT", " SELL ", Signal{Symbol: "ETHUSDT", Intent: IntentOpen, Side: SideSell, Raw: " SELL "}},
		{"BTCUSDT", "exit", Signal{Symbol: "BTCUSDT", Intent: IntentClose, Raw: "exit"}},
		{"BTCUSDT", "Close", Signal{Symbol: "BTCUSDT", Intent: IntentClose, Raw: "Close"}},
		{"BTCUSDT", "hold", Signal{Symbol: "BTCUSDT", Intent: IntentUnknown, Raw: "hold"}},
		{"", "", Signal{}},
	}
	for _, tt := range tests {
		t.Run(tt.side, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSignal(tt.symbol, tt.side))
		})
	}
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, SideSell, SideBuy.Opposite())
	assert.Equal(t, SideBuy, SideSell.Opposite())
	assert.Equal(t, SideNone, SideNone.Opposite())
	assert.Equal(t, SideSell, PositionShort.EntrySide())
	assert.Equal(t, SideBuy, PositionLong.EntrySide())
}
