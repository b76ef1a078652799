package layout

import "testing"

func TestValue_Constructors(t *testing.T) {
	type tc struct {
		value     Value
		isAuto    bool
		isFixed   bool
		isPercent bool
		amount    float64
	}

	tests := map[string]tc{
		"Auto": {
			value:  Auto(),
			isAuto: true,
		},
		"Fixed": {
			value:   Fixed(100),
			isFixed: true,
			amount:  100,
		},
		"Percent": {
			value:     Percent(50),
			isPercent: true,
			amount:    50,
		},
		"zero value is auto": {
			value:  Value{},
			isAuto: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if got := tt.value.IsFixed(); got != tt.isFixed {
				t.Errorf("IsFixed() = %v, want %v", got, tt.isFixed)
			}
			if got := tt.value.IsPercent(); got != tt.isPercent {
				t.Errorf("IsPercent() = %v, want %v", got, tt.isPercent)
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
			value:     Fixed(50),
			available: 100,
			expected:  50,
		},
		"fixed ignores fallback": {
			value:     Fixed(50),
			available: 100,
			fallback:  999,
			expected:  50,
		},
		"50 percent of 100": {
			value:     Percent(50),
			available: 100,
			expected:  50,
		},
		"25 percent of 200": {
			value:     Percent(25),
			available: 200,
			expected:  50,
		},
		"fractional percent is not truncated": {
			value:     Percent(33.5),
			available: 100,
			expected:  33.5,
		},
		"percent over 100": {
			value:     Percent(150),
			available: 100,
			expected:  150,
		},
		"auto returns fallback": {
			value:     Auto(),
			available: 100,
			fallback:  42,
			expected:  42,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.available, tt.fallback)
			if got != tt.expected {
				t.Errorf("Resolve(%v, %v) = %v, want %v",
					tt.available, tt.fallback, got, tt.expected)
			}
		})
	}
}
