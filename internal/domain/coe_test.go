package domain

import "testing"

func TestMinCOE(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		want   int
		wantOK bool
	}{
		{name: "boro manufacturer", code: "GA", want: 33, wantOK: true},
		{name: "soft glass manufacturer", code: "EF", want: 104, wantOK: true},
		{name: "multi-class uses lowest", code: "TAG", want: 33, wantOK: true},
		{name: "unknown code", code: "NOPE", wantOK: false},
		{name: "empty code", code: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MinCOE(ManufacturerCOE, tt.code)
			if ok != tt.wantOK {
				t.Fatalf("MinCOE(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("MinCOE(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestSearchFieldsLabels(t *testing.T) {
	item := GlassItem{
		Code:         "EF-591-246",
		Name:         "Dark Red",
		Manufacturer: "EF",
		COE:          "104",
		Tags:         []string{"transparent", "striking"},
	}

	fields := item.SearchFields()
	labels := make(map[string]string, len(fields))
	for _, f := range fields {
		labels[f.Name] = f.Value
	}

	if labels["name"] != "Dark Red" {
		t.Errorf("name field = %q", labels["name"])
	}
	if labels["tags"] != "transparent striking" {
		t.Errorf("tags field = %q, want joined tags", labels["tags"])
	}
	if labels["coe"] != "104" {
		t.Errorf("coe field = %q", labels["coe"])
	}
}
