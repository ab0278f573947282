package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Endpoint binds a routing pattern to the role tier allowed to call it.
// An empty role list means any authenticated session; Skip marks the
// endpoints reachable without a session at all.
type Endpoint struct {
	Roles  []string `json:"roles"`
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Skip   bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Endpoint `json:"endpoints"`
}

// Find matches the routing pattern and method against the embedded table.
// Unknown endpoints return the zero Endpoint, which denies nothing by
// itself but never skips authentication.
func (r *PermissionData) Find(path, method string) Endpoint {
	idx := slices.IndexFunc(r.Endpoints, func(e Endpoint) bool {
		return e.Path == path && e.Method == method
	})

	if idx == -1 {
		return Endpoint{}
	}

	return r.Endpoints[idx]
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
