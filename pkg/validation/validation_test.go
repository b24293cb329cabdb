package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"Pretty", "pretty", false},
		{"CSV", "csv", false},
		{"JSON", "json", false},
		{"Empty", "", true},
		{"Unknown", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{"Personal", "personal", false},
		{"Business", "business", false},
		{"Empty defaults", "", false},
		{"Unknown", "household", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMode(tt.mode)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFrequency(t *testing.T) {
	tests := []struct {
		name      string
		frequency string
		wantErr   bool
	}{
		{"Monthly", "monthly", false},
		{"Quarterly", "quarterly", false},
		{"Annual", "annual", false},
		{"Custom", "custom", false},
		{"Empty defaults", "", false},
		{"Unknown", "weekly", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFrequency(tt.frequency)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFrequency(%q) error = %v, wantErr %v", tt.frequency, err, tt.wantErr)
			}
		})
	}
}
