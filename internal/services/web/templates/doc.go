// Package templates renders the job portal HTML views as templ components.
package templates
