// Package forms turns submitted form values into catalog entities.
//
// Each entity has a Form type holding the trimmed, plain-text values a user
// submitted. Validate checks every field and returns all failures at once;
// within a single field the first failing rule is reported. Only a form that
// validated cleanly should be converted into an entity, and that conversion
// HTML-escapes every stored string.
//
//	form := forms.NewAuthorForm(c.Request.PostForm)
//	if errs := form.Validate(); len(errs) > 0 {
//		// re-render with form and errs
//	}
//	author := form.Author()
package forms
