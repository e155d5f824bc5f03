package submission

import "testing"

func TestPlausibleEmail(t *testing.T) {
	tests := map[string]bool{
		"dana@clinic.com":        true,
		"front.desk@care.co.uk":  true,
		"dana":                   false,
		"dana@clinic":            false,
		"dana@clinic.":           false,
		"Dana <dana@clinic.com>": false,
		"@clinic.com":            false,
		"dana@@clinic.com":       false,
		"dana@.com":              false,
	}
	for input, want := range tests {
		if got := PlausibleEmail(input); got != want {
			t.Fatalf("PlausibleEmail(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestValidateOptionalFields(t *testing.T) {
	form := ContactForm()
	values := form.Blank()
	values["name"] = "Dana"
	values["email"] = "dana@clinic.com"
	values["message"] = "Hello"
	if err := form.Validate(values); err != nil {
		t.Fatalf("expected optional practice field to be skipped, got %v", err)
	}
	values["name"] = "   "
	err := form.Validate(values)
	vErr, ok := err.(*ValidationError)
	if !ok || vErr.Field != "name" {
		t.Fatalf("expected whitespace-only name to fail, got %v", err)
	}
}

func TestBlankCoversAllFields(t *testing.T) {
	form := LoginForm()
	blank := form.Blank()
	if len(blank) != len(form.Fields) {
		t.Fatalf("expected %d fields, got %d", len(form.Fields), len(blank))
	}
}
