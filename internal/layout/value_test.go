package layout

import (
	"math"
	"testing"
)

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value     Value
		isAuto    bool
		isPercent bool
		unit      Unit
		amount    float64
	}

	tests := map[string]tc{
		"Auto": {
			value:  Auto(),
			isAuto: true,
			unit:   UnitAuto,
		},
		"Fixed": {
			value:  Fixed(100),
			unit:   UnitFixed,
			amount: 100,
		},
		"Percent": {
			value:     Percent(50),
			isPercent: true,
			unit:      UnitPercent,
			amount:    50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if got := tt.value.IsPercent(); got != tt.isPercent {
				t.Errorf("IsPercent() = %v, want %v", got, tt.isPercent)
			}
			if tt.value.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", tt.value.Unit, tt.unit)
			}
			if tt.value.Amount != tt.amount {
				t.Errorf("Amount = %v, want %v", tt.value.Amount, tt.amount)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		available float64
		fallback  float64
		expected  float64
	}

	tests := map[string]tc{
		"fixed ignores available": {
			value:     Fixed(30),
			available: 200,
			fallback:  5,
			expected:  30,
		},
		"percent of available": {
			value:     Percent(25),
			available: 200,
			expected:  50,
		},
		"auto uses fallback": {
			value:     Auto(),
			available: 200,
			fallback:  7,
			expected:  7,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.available, tt.fallback); got != tt.expected {
				t.Errorf("Resolve(%v, %v) = %v, want %v", tt.available, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestDim(t *testing.T) {
	type tc struct {
		dim   Dim
		isSet bool
		or    float64
		str   string
		maxOr float64
	}

	tests := map[string]tc{
		"unset": {
			dim:   Unset(),
			or:    9,
			str:   "auto",
			maxOr: math.Inf(1),
		},
		"zero value is unset": {
			dim:   Dim{},
			or:    9,
			str:   "auto",
			maxOr: math.Inf(1),
		},
		"explicit": {
			dim:   Explicit(42.5),
			isSet: true,
			or:    42.5,
			str:   "42.5",
			maxOr: 42.5,
		},
		"explicit zero": {
			dim:   Explicit(0),
			isSet: true,
			or:    0,
			str:   "0",
			maxOr: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.dim.IsSet(); got != tt.isSet {
				t.Errorf("IsSet() = %v, want %v", got, tt.isSet)
			}
			if got := tt.dim.Or(9); got != tt.or {
				t.Errorf("Or(9) = %v, want %v", got, tt.or)
			}
			if got := tt.dim.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.dim.maxOr(); got != tt.maxOr {
				t.Errorf("maxOr() = %v, want %v", got, tt.maxOr)
			}
		})
	}
}

func TestExplicit_NaNPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Explicit(NaN) should panic")
		}
	}()
	Explicit(math.NaN())
}

func TestParseAlign(t *testing.T) {
	for _, a := range []Align{AlignStart, AlignCenter, AlignEnd, AlignJustify} {
		got, ok := ParseAlign(a.String())
		if !ok || got != a {
			t.Errorf("ParseAlign(%q) = %v, %v, want %v", a.String(), got, ok, a)
		}
	}
	if _, ok := ParseAlign("middle"); ok {
		t.Error("ParseAlign(\"middle\") should fail")
	}
}

func TestClamp(t *testing.T) {
	type tc struct {
		v, min, max float64
		expected    float64
	}

	tests := map[string]tc{
		"inside":        {v: 5, min: 0, max: 10, expected: 5},
		"below":         {v: -1, min: 0, max: 10, expected: 0},
		"above":         {v: 11, min: 0, max: 10, expected: 10},
		"unbounded":     {v: 1e9, min: 0, max: math.Inf(1), expected: 1e9},
		"min beats max": {v: 5, min: 8, max: 3, expected: 8},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := clamp(tt.v, tt.min, tt.max); got != tt.expected {
				t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}
