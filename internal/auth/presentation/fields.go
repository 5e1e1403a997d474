package presentation

import "github.com/dmitrijs2005/gophgram/internal/auth/validate"

var labels = map[validate.Field]string{
	validate.FieldName:     "Name",
	validate.FieldUsername: "Username",
	validate.FieldEmail:    "Email",
	validate.FieldPassword: "Password",
}

var descriptions = map[validate.Field]string{
	validate.FieldName:     "This is your public display name.",
	validate.FieldUsername: "This is your public display username.",
}

// Label returns the display label of field.
func Label(field validate.Field) string {
	return labels[field]
}

// Placeholder returns the hint shown inside an empty field. It is hidden
// while the field has focus.
func (f *Form) Placeholder(field validate.Field) string {
	if f.Snapshot().FocusedField == field {
		return ""
	}
	if l, ok := labels[field]; ok {
		return "Enter Your " + l
	}
	return ""
}

// Description returns the helper text of field. Only name and username have
// one, and it is shown only while the field has focus.
func (f *Form) Description(field validate.Field) string {
	if f.Snapshot().FocusedField != field {
		return ""
	}
	return descriptions[field]
}
