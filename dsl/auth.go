package dsl

import "net/http"

// checkAuth validates the foo/bar basic-auth credentials the mock
// broker fixtures in broker_test.go expect.
func checkAuth(w http.ResponseWriter, r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	return ok && user == "foo" && pass == "bar"
}
