package models

import "strings"

type Intent string

const (
	IntentUnknown Intent = ""
	IntentOpen    Intent = "open"
	IntentClose   Intent = "close"
)

// Side ордера в терминах биржи.
type Side string

const (
	SideNone Side = ""
	SideBuy  Side = "Buy"
	SideSell Side = "Sell"
)

// Opposite: сторона закрывающего ордера.
func (s Side) Opposite() Side {
	switch s {
	case SideBuy:
		return SideSell
	case SideSell:
		return SideBuy
	default:
		return SideNone
	}
}

// Signal: команда из вебхука, живёт один запрос.
type Signal struct {
	Symbol string
	Intent Intent
	Side   Side // только для IntentOpen
	Raw    string
}

// ParseSignal мапит поле side вебхука: buy / sell / exit (close).
func ParseSignal(symbol, side string) Signal {
	sig := Signal{
		Symbol: strings.ToUpper(strings.TrimSpace(symbol)),
		Raw:    side,
	}
	switch strings.ToLower(strings.TrimSpace(side)) {
	case "buy":
		sig.Intent, sig.Side = IntentOpen, SideBuy
	case "sell":
		sig.Intent, sig.Side = IntentOpen, SideSell
	case "exit", "close":
		sig.Intent = IntentClose
	}
	return sig
}
