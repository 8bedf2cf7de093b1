package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CashFlowFile is the on-disk shape of a cash-flow document.
// JSON files may also hold a bare array.
type CashFlowFile struct {
	Name      string    `json:"name,omitempty" yaml:"name"`
	CashFlows []float64 `json:"cash_flows" yaml:"cash_flows"`
}

// LoadCashFlows reads a .json, .yaml or .yml cash-flow file.
func LoadCashFlows(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	flows, err := ParseCashFlows(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return flows, nil
}

// ParseCashFlows decodes raw according to ext (".json", ".yaml", ".yml").
func ParseCashFlows(raw []byte, ext string) ([]float64, error) {
	var f CashFlowFile
	switch strings.ToLower(ext) {
	case ".json":
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &f.CashFlows); err != nil {
				return nil, err
			}
		} else if err := json.Unmarshal(trimmed, &f); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported cash-flow file type %q", ext)
	}
	if len(f.CashFlows) == 0 {
		return nil, errors.New("no cash flows in file")
	}
	for i, v := range f.CashFlows {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("cash flow %d is not a finite number", i)
		}
	}
	return f.CashFlows, nil
}

// ParseFlowList parses a comma-separated list such as "-100, 60, 60".
func ParseFlowList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid cash flow %q", p)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("no cash flows given")
	}
	return out, nil
}
