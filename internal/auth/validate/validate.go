// Package validate holds the field validators for the signup and signin forms.
//
// Validators are pure functions of the submitted values: they never touch the
// network, never normalise input and always return a freshly built Result, so
// they can run on every keystroke as well as on submit.
package validate

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field identifies a form field.
type Field string

const (
	FieldNone     Field = ""
	FieldName     Field = "name"
	FieldUsername Field = "username"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Length bounds of the built-in policy.
const (
	MaxNameLength     = 50
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// Credentials are the raw values a user typed into a form. Name and Username
// are only used by the signup form.
type Credentials struct {
	Name     string
	Username string
	Email    string
	Password string
}

// Result maps every invalid field to its error message. Fields missing from
// the map are valid.
type Result map[Field]string

// OK reports whether the whole form is accepted.
func (r Result) OK() bool { return len(r) == 0 }

// Error returns the message attached to f, or "" if f is valid.
func (r Result) Error(f Field) string { return r[f] }

// Rule checks a single value and returns an error message, or "" on success.
type Rule func(value string) string

// Validator checks a fixed, ordered set of fields.
type Validator struct {
	fields []Field
	rules  map[Field][]Rule
}

// Signup returns the validator for the account creation form.
func Signup() Validator {
	return Validator{
		fields: []Field{FieldName, FieldUsername, FieldEmail, FieldPassword},
		rules: map[Field][]Rule{
			FieldName:     {Required("Name is required."), MaxLength(MaxNameLength, "Name is too long.")},
			FieldUsername: {Required("Username is required."), MaxLength(MaxNameLength, "Username is too long.")},
			FieldEmail:    emailRules(),
			FieldPassword: passwordRules(),
		},
	}
}

// Signin returns the validator for the sign-in form.
func Signin() Validator {
	return Validator{
		fields: []Field{FieldEmail, FieldPassword},
		rules: map[Field][]Rule{
			FieldEmail:    emailRules(),
			FieldPassword: passwordRules(),
		},
	}
}

// Account validates only the fields the server can see when an account is
// created; the password never leaves the client.
func Account() Validator {
	v := Signup()
	v.fields = []Field{FieldName, FieldUsername, FieldEmail}
	return v
}

func emailRules() []Rule {
	return []Rule{Required("Email is required."), EmailShape("Enter a valid email address.")}
}

func passwordRules() []Rule {
	return []Rule{
		Required("Password is required."),
		MinLength(MinPasswordLength, "Password must be at least 8 characters."),
		MaxLength(MaxPasswordLength, "Password is too long."),
	}
}

// Fields lists the fields of the form in display order.
func (v Validator) Fields() []Field {
	out := make([]Field, len(v.fields))
	copy(out, v.fields)
	return out
}

// Has reports whether the form has field f.
func (v Validator) Has(f Field) bool {
	_, ok := v.rules[f]
	return ok
}

// Validate checks every field. Each invalid field reports only its first
// violated rule.
func (v Validator) Validate(c Credentials) Result {
	res := Result{}
	for _, f := range v.fields {
		if msg := v.ValidateField(f, c); msg != "" {
			res[f] = msg
		}
	}
	return res
}

// ValidateField checks a single field and returns its error message, or "".
func (v Validator) ValidateField(f Field, c Credentials) string {
	value := Value(c, f)
	for _, rule := range v.rules[f] {
		if msg := rule(value); msg != "" {
			return msg
		}
	}
	return ""
}

// Value returns the raw value of field f.
func Value(c Credentials, f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldUsername:
		return c.Username
	case FieldEmail:
		return c.Email
	case FieldPassword:
		return c.Password
	}
	return ""
}

// Set returns a copy of c with field f replaced.
func Set(c Credentials, f Field, value string) Credentials {
	switch f {
	case FieldName:
		c.Name = value
	case FieldUsername:
		c.Username = value
	case FieldEmail:
		c.Email = value
	case FieldPassword:
		c.Password = value
	}
	return c
}

// Required fails on an empty value. Whitespace counts as content.
func Required(msg string) Rule {
	return func(value string) string {
		if value == "" {
			return msg
		}
		return ""
	}
}

// MinLength fails when value has fewer than n runes.
func MinLength(n int, msg string) Rule {
	return func(value string) string {
		if utf8.RuneCountInString(value) < n {
			return msg
		}
		return ""
	}
}

// MaxLength fails when value has more than n runes.
func MaxLength(n int, msg string) Rule {
	return func(value string) string {
		if utf8.RuneCountInString(value) > n {
			return msg
		}
		return ""
	}
}

// EmailShape accepts a bare local@domain address whose domain is made of at
// least two dot-separated host labels. Display names ("Bob <bob@x.io>"),
// surrounding spaces and IP-literal domains are rejected.
func EmailShape(msg string) Rule {
	return func(value string) string {
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Name != "" || addr.Address != value {
			return msg
		}
		domain := value[strings.LastIndexByte(value, '@')+1:]
		labels := strings.Split(domain, ".")
		if len(labels) < 2 {
			return msg
		}
		for _, l := range labels {
			if !hostLabel(l) {
				return msg
			}
		}
		return ""
	}
}

// hostLabel reports whether l is a non-empty run of letters, digits and
// inner hyphens.
func hostLabel(l string) bool {
	if l == "" || strings.HasPrefix(l, "-") || strings.HasSuffix(l, "-") {
		return false
	}
	for _, r := range l {
		if r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
