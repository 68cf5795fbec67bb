package jobapi

import "net/http"

// Credentials are the browser cookies forwarded to the backend, which owns
// authentication.
type Credentials []*http.Cookie

// CredentialsFromRequest captures the cookies sent by the browser.
func CredentialsFromRequest(r *http.Request) Credentials {
	if r == nil {
		return nil
	}
	cookies := r.Cookies()
	creds := make(Credentials, 0, len(cookies))
	for _, cookie := range cookies {
		if cookie == nil || cookie.Name == "" {
			continue
		}
		creds = append(creds, &http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	return creds
}

func (c Credentials) apply(req *http.Request) {
	for _, cookie := range c {
		if cookie != nil {
			req.AddCookie(cookie)
		}
	}
}
