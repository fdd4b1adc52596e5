package backend

import "fmt"

// ConfigError reports missing service configuration discovered at
// authentication time.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("credenciales de servicio no configuradas: configure %s", e.Missing)
}

// AuthError reports a rejected login. Message carries the backend-provided
// reason when one was returned.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("error de autenticación: %s", e.Message)
}

// APIError reports a failed backend request that is not an auth problem.
// StatusCode is zero for transport-level failures.
type APIError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("backend HTTP %d on %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("backend request to %s failed: %v", e.URL, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }
