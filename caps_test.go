package candlestick

import (
	"testing"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestDetectCapabilities(t *testing.T) {
	type tc struct {
		env  map[string]string
		want Capabilities
	}

	tests := map[string]tc{
		"nothing set": {
			env:  map[string]string{},
			want: Capabilities{Colors: Color16, Unicode: true},
		},
		"256 color term": {
			env:  map[string]string{"TERM": "xterm-256color"},
			want: Capabilities{Colors: Color256, Unicode: true},
		},
		"colorterm truecolor": {
			env:  map[string]string{"TERM": "xterm-256color", "COLORTERM": "truecolor"},
			want: Capabilities{Colors: ColorTrue, Unicode: true, TrueColor: true},
		},
		"colorterm 24bit": {
			env:  map[string]string{"COLORTERM": "24bit"},
			want: Capabilities{Colors: ColorTrue, Unicode: true, TrueColor: true},
		},
		"kitty": {
			env:  map[string]string{"KITTY_WINDOW_ID": "1"},
			want: Capabilities{Colors: ColorTrue, Unicode: true, TrueColor: true},
		},
		"dumb": {
			env:  map[string]string{"TERM": "dumb"},
			want: Capabilities{Colors: ColorNone},
		},
		"no color wins": {
			env:  map[string]string{"NO_COLOR": "1", "COLORTERM": "truecolor"},
			want: Capabilities{Colors: ColorNone, Unicode: true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := detectCapabilities(envOf(tt.env)); got != tt.want {
				t.Errorf("detectCapabilities() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCapabilities_EffectiveColor(t *testing.T) {
	type tc struct {
		caps  Capabilities
		color Color
		want  Color
	}

	red := RGBColor(255, 0, 0)

	tests := map[string]tc{
		"true color keeps rgb": {
			caps:  Capabilities{Colors: ColorTrue, TrueColor: true},
			color: red,
			want:  red,
		},
		"256 approximates rgb": {
			caps:  Capabilities{Colors: Color256},
			color: red,
			want:  red.ToANSI(),
		},
		"16 approximates rgb": {
			caps:  Capabilities{Colors: Color16},
			color: red,
			want:  red.ToANSI(),
		},
		"no color drops rgb": {
			caps:  Capabilities{Colors: ColorNone},
			color: red,
			want:  DefaultColor(),
		},
		"no color drops ansi": {
			caps:  Capabilities{Colors: ColorNone},
			color: ANSIColor(1),
			want:  DefaultColor(),
		},
		"default stays default": {
			caps:  Capabilities{Colors: ColorNone},
			color: DefaultColor(),
			want:  DefaultColor(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.caps.EffectiveColor(tt.color); !got.Equal(tt.want) {
				t.Errorf("EffectiveColor(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestCapabilities_String(t *testing.T) {
	type tc struct {
		caps Capabilities
		want string
	}

	tests := map[string]tc{
		"true color": {caps: Capabilities{Colors: ColorTrue, Unicode: true, TrueColor: true}, want: "true-color, unicode"},
		"dumb":       {caps: Capabilities{Colors: ColorNone}, want: "no-color, ascii"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.caps.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
