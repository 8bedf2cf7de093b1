package model

import (
	"errors"
	"fmt"
	"math"
)

// Mode selects how the calculator builds its cash flows.
// Keep these values stable; they are part of the API.
type Mode string

const (
	ModeAutomatic Mode = "automatic"
	ModeManual    Mode = "manual"
)

// Projection is the calculator input. In automatic mode the returns are generated
// from a first-period return growing at GrowthRate per period; in manual mode the
// caller supplies every cash flow, index 0 being the initial outlay.
type Projection struct {
	Mode Mode

	InitialInvestment float64
	FirstReturn       float64
	Periods           int
	GrowthRate        float64

	CashFlows []float64
}

func (p Projection) Validate() error {
	switch p.Mode {
	case ModeAutomatic:
		if !isFinite(p.InitialInvestment) || p.InitialInvestment <= 0 {
			return errors.New("InitialInvestment must be > 0")
		}
		if !isFinite(p.FirstReturn) {
			return errors.New("FirstReturn must be a finite number")
		}
		if p.Periods < 1 {
			return errors.New("Periods must be >= 1")
		}
		if !isFinite(p.GrowthRate) || p.GrowthRate <= -1 {
			return errors.New("GrowthRate must be > -1")
		}
	case ModeManual:
		if len(p.CashFlows) == 0 {
			return errors.New("CashFlows must have at least one entry")
		}
		for i, cf := range p.CashFlows {
			if !isFinite(cf) {
				return fmt.Errorf("CashFlows[%d] must be a finite number", i)
			}
		}
	default:
		return fmt.Errorf("unsupported mode: %q", p.Mode)
	}
	return nil
}

// Flows returns the projected sequence, outlay first.
func (p Projection) Flows() ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Mode == ModeManual {
		out := make([]float64, len(p.CashFlows))
		copy(out, p.CashFlows)
		return out, nil
	}

	out := make([]float64, p.Periods+1)
	out[0] = -p.InitialInvestment
	for i := 1; i <= p.Periods; i++ {
		out[i] = p.FirstReturn * math.Pow(1+p.GrowthRate, float64(i-1))
	}
	return out, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
