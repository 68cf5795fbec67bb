// Package jobapi is the HTTP client for the job portal backend REST API.
//
// Every backend response carries a success flag. Transport failures and
// non-2xx statuses surface as RequestFailure; a 2xx response whose success
// flag is false or absent surfaces as ApplicationFailure. Callers that only
// need the user-facing text use ServerMessage.
package jobapi
