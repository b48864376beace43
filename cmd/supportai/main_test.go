package main

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The served OpenAPI document must stay loadable and structurally valid;
// the swagger middleware ships it to browsers as-is.
func TestOpenAPIDocument(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	assert.Equal(t, "SupportAI Admin Proxy API", doc.Info.Title)

	for _, path := range []string{
		"/auth/login",
		"/auth/logout",
		"/auth/me",
		"/tenants",
		"/tenants/{id}",
		"/tenants/{id}/users",
		"/tenants/{id}/chatbot",
		"/plans",
		"/coupons",
		"/coupons/{id}",
		"/logs",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s must be documented", path)
	}
}
