package dropt

import "testing"

func TestTable_FindLong(t *testing.T) {
	h := func(Value) error { return nil }
	table := Table{
		{Short: 'a', Long: "alpha", Description: "first", Handler: h},
		{Short: 'b', Long: "alpha", Description: "shadowed", Handler: h},
		{Short: 'c', Handler: h},
	}

	tests := []struct {
		name   string
		lookup string
		cmp    Comparer
		want   rune
	}{
		{"exact", "alpha", nil, 'a'},
		{"case differs", "ALPHA", nil, 0},
		{"case folded", "ALPHA", CaseInsensitive, 'a'},
		{"empty", "", CaseInsensitive, 0},
		{"missing", "beta", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ok := table.FindLong(tt.lookup, tt.cmp)
			if tt.want == 0 {
				if ok {
					t.Errorf("expected no match, got %q", o.Name())
				}
				return
			}
			if !ok || o.Short != tt.want {
				t.Errorf("expected -%c, got %v", tt.want, o)
			}
		})
	}
}

func TestTable_FindShort(t *testing.T) {
	h := func(Value) error { return nil }
	table := Table{
		{Long: "nameless", Handler: h},
		{Short: 'v', Long: "verbose", Handler: h},
		{Short: 'é', Long: "accent", Handler: h},
	}

	tests := []struct {
		r    rune
		cmp  Comparer
		want string
	}{
		{'v', nil, "--verbose"},
		{'V', nil, ""},
		{'V', CaseInsensitive, "--verbose"},
		{'É', CaseInsensitive, "--accent"},
		{0, nil, ""},
	}

	for _, tt := range tests {
		o, ok := table.FindShort(tt.r, tt.cmp)
		got := ""
		if ok {
			got = o.Name()
		}
		if got != tt.want {
			t.Errorf("FindShort(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestCaseInsensitive(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"verbose", "VERBOSE", true},
		{"été", "ÉTÉ", true},
		{"σας", "ΣΑΣ", true},
		{"verbose", "verbos", false},
		{"normalFlag", "NORMALflag", true},
		{"straße", "STRASSE", true},
		{"strasse", "STRASSE", true},
		{"straße", "strase", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := CaseInsensitive(tt.a, tt.b); got != tt.want {
			t.Errorf("CaseInsensitive(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCaseInsensitive_ASCIIDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		CaseInsensitive("normalFlag", "NORMALFLAG")
		CaseInsensitive("normalFlag", "verbose")
	})
	if allocs != 0 {
		t.Errorf("expected no allocations for ASCII names, got %v", allocs)
	}
}

func TestOptionName(t *testing.T) {
	tests := []struct {
		opt  Option
		want string
	}{
		{Option{Short: 'x', Long: "ex"}, "--ex"},
		{Option{Short: 'x'}, "-x"},
		{Option{Short: 'ü'}, "-ü"},
		{Option{}, ""},
	}
	for _, tt := range tests {
		if got := tt.opt.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}
