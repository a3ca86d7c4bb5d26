package common

// AuthHeaderName is the HTTP header carrying the bearer token on outbound
// requests.
const AuthHeaderName = "Authorization"
