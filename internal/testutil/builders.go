package testutil

// FieldsBuilder provides a fluent API for form values used in tests.
type FieldsBuilder struct {
	fields map[string]string
}

// NewContact starts from a contact submission that passes validation.
func NewContact() *FieldsBuilder {
	return &FieldsBuilder{fields: map[string]string{
		"name":     "Dana Whitfield",
		"email":    "dana@brightsmiles.example.com",
		"practice": "Bright Smiles Dental",
		"message":  "We run three chairs and want online booking.",
	}}
}

// NewLogin starts from login credentials that pass validation.
func NewLogin() *FieldsBuilder {
	return &FieldsBuilder{fields: map[string]string{
		"email":    "frontdesk@clinic.example.com",
		"password": "Scheduling1",
	}}
}

func (b *FieldsBuilder) With(name, value string) *FieldsBuilder {
	b.fields[name] = value
	return b
}

func (b *FieldsBuilder) Without(name string) *FieldsBuilder {
	b.fields[name] = ""
	return b
}

func (b *FieldsBuilder) WithEmail(email string) *FieldsBuilder {
	return b.With("email", email)
}

// Build returns a copy of the values.
func (b *FieldsBuilder) Build() map[string]string {
	out := make(map[string]string, len(b.fields))
	for k, v := range b.fields {
		out[k] = v
	}
	return out
}
