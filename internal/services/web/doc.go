// Package web owns the browser-facing job portal.
//
// It composes the category browser, job listings and the recruiter posting
// form into one HTTP handler, and talks to the backend REST API on behalf of
// the browser.
package web
