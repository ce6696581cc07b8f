package engine

import "testing"

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(circle :radius 2)`,
			expect: `(circle "__kw_radius" 2)`,
		},
		{
			name:   "multiple keywords",
			input:  `(rect :width 4 :height 2)`,
			expect: `(rect "__kw_width" 4 "__kw_height" 2)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "keyword in backtick string preserved",
			input:  "`raw :keyword; not a comment`",
			expect: "`raw :keyword; not a comment`",
		},
		{
			name:   "escaped quote in string",
			input:  `"say \"hi\" :x" :y`,
			expect: `"say \"hi\" :x" "__kw_y"`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(def start-box (zone "start"))`,
			expect: `(def start_box (zone "start"))`,
		},
		{
			name:   "minus operator and negative numbers preserved",
			input:  `(move z (- 10 5) -3)`,
			expect: `(move z (- 10 5) -3)`,
		},
		{
			name:   "double semicolon comment",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "trailing comment",
			input:  "(point 1 2) ; origin-ish\n(point 3 4)",
			expect: "(point 1 2) // origin-ish\n(point 3 4)",
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:max-speed`,
			expect: `"__kw_max-speed"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.input); got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
