package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
			"cors":               map[string]any{"allowedOrigins": []any{}},
		},
		"catalog": map[string]any{
			"defaultProductLimit": 12,
			"maxLimit":            100,
		},
		"storage": map[string]any{"bucketUrl": "mem://"},
		"auth":    map[string]any{"accessTokenTTL": "1h"},
		"pubsub":  map[string]any{"pushAudience": ""},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "HTTP_CORS_ALLOWEDORIGINS", want: "http.cors.allowedOrigins"},
		{envKey: "CATALOG_DEFAULTPRODUCTLIMIT", want: "catalog.defaultProductLimit"},
		{envKey: "CATALOG_MAXLIMIT", want: "catalog.maxLimit"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "PUBSUB_PUSHAUDIENCE", want: "pubsub.pushAudience"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "QRCODE_SIZE", want: "qrcode.size"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
