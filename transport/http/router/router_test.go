package router_test

import (
	"net/http"
	"strings"
	"testing"

	"hotel/permissions"
	"hotel/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainRoutesAreCovered(t *testing.T) {
	handlers := router.DomainHandlers{}

	r := chi.NewRouter()
	r.Route("/v1", handlers.Mount)

	table := permissions.Get()
	seen := 0

	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}

		endpoint := table.FindPermissions(route, method)

		assert.Truef(t, endpoint.Skip || len(endpoint.Permissions) > 0, "%s %s has no permission entry", method, route)

		for _, tag := range endpoint.Permissions {
			assert.Truef(t, permissions.IsKnown(tag), "%s %s requires unknown capability %q", method, route, tag)
		}

		seen++

		return nil
	})

	require.NoError(t, err)
	assert.Len(t, table.Endpoints, seen)
}
