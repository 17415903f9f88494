package guard

import (
	"fmt"

	"github.com/pizzadelight/storefront/internal/auth"
)

// Zone classifies a route by who may enter it.
type Zone string

const (
	ZonePublic   Zone = "public"
	ZoneCustomer Zone = "customer"
	ZoneAdmin    Zone = "admin"
)

var validZones = []Zone{ZonePublic, ZoneCustomer, ZoneAdmin}

// String implements fmt.Stringer.
func (z Zone) String() string {
	return string(z)
}

// IsValid reports whether the value is a known Zone.
func (z Zone) IsValid() bool {
	for _, candidate := range validZones {
		if candidate == z {
			return true
		}
	}
	return false
}

// ParseZone converts raw input into a Zone.
func ParseZone(value string) (Zone, error) {
	for _, candidate := range validZones {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid zone %q", value)
}

// Decision is the guard's verdict for a navigation attempt.
type Decision string

const (
	// DecisionAllow lets the navigation through.
	DecisionAllow Decision = "allow"
	// DecisionWait means the session is not hydrated yet; hold the
	// navigation instead of bouncing the user off a page they own.
	DecisionWait Decision = "wait"
	// DecisionRedirectLogin sends an unauthenticated visitor to login.
	DecisionRedirectLogin Decision = "redirect_login"
	// DecisionRedirectHome sends a non-admin away from admin pages.
	DecisionRedirectHome Decision = "redirect_home"
)

// Check decides whether the session may enter the zone. Public zones
// never block; protected zones wait for hydration before judging.
func Check(state auth.SessionState, zone Zone) Decision {
	if zone == ZonePublic {
		return DecisionAllow
	}
	if !state.Hydrated {
		return DecisionWait
	}
	if !state.Authenticated {
		return DecisionRedirectLogin
	}
	if zone == ZoneAdmin && !state.Admin {
		return DecisionRedirectHome
	}
	return DecisionAllow
}
