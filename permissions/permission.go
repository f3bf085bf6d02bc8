package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the capabilities that unlock one route pattern.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks up a chi route pattern such as /v1/bookings/{id}/cancel.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return rp.Path == path && rp.Method == method
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	for _, endpoint := range permissions.Endpoints {
		for _, tag := range endpoint.Permissions {
			if !IsKnown(tag) {
				return nil, fmt.Errorf("endpoint %s %s references unknown permission %q", endpoint.Method, endpoint.Path, tag)
			}
		}
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := parse(permissionsData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load embedded permissions")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
