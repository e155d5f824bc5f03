package submission

import (
	"net/mail"
	"strings"
)

// FieldKind selects the validation applied to a field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldEmail
	FieldSecret
	FieldMultiline
)

// Field describes one input of a form.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Kind        FieldKind
	Required    bool
}

// Form is the schema a Controller validates against.
type Form struct {
	Name   string
	Fields []Field
}

// Field looks a field up by name.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Blank returns the form's fields with empty values.
func (f Form) Blank() map[string]string {
	out := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		out[field.Name] = ""
	}
	return out
}

// Validate checks values in field order and returns the first problem.
func (f Form) Validate(values map[string]string) error {
	for _, field := range f.Fields {
		v := strings.TrimSpace(values[field.Name])
		if v == "" {
			if field.Required {
				return &ValidationError{Field: field.Name, Reason: "is required"}
			}
			continue
		}
		if field.Kind == FieldEmail && !PlausibleEmail(v) {
			return &ValidationError{Field: field.Name, Reason: "is not a valid email address"}
		}
	}
	return nil
}

// PlausibleEmail reports whether v looks like a bare user@domain.tld address.
func PlausibleEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return false
	}
	at := strings.LastIndex(v, "@")
	if at <= 0 {
		return false
	}
	domain := v[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// LoginForm is the schema of the login modal.
func LoginForm() Form {
	return Form{
		Name: "login",
		Fields: []Field{
			{Name: "email", Label: "Email", Placeholder: "you@clinic.com", Kind: FieldEmail, Required: true},
			{Name: "password", Label: "Password", Placeholder: "Password", Kind: FieldSecret, Required: true},
		},
	}
}

// ContactForm is the schema of the contact section.
func ContactForm() Form {
	return Form{
		Name: "contact",
		Fields: []Field{
			{Name: "name", Label: "Name", Placeholder: "Jane Doe", Kind: FieldText, Required: true},
			{Name: "email", Label: "Email", Placeholder: "jane@clinic.com", Kind: FieldEmail, Required: true},
			{Name: "practice", Label: "Practice", Placeholder: "Practice name (optional)", Kind: FieldText},
			{Name: "message", Label: "Message", Placeholder: "How can we help?", Kind: FieldMultiline, Required: true},
		},
	}
}
