package dashboard

type apiRequest struct {
	method      string
	path        string
	queryParams map[string]string
	authHeaders map[string]string
	headers     map[string]string
	reqBodyObj  interface{}
	// successCode of 0 accepts any 2xx response
	successCode int
	// anyStatus hands every response back to the caller untouched
	anyStatus bool
	respObj   interface{}
}
