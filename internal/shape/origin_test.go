package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrigin(t *testing.T) {
	base := OriginInput{
		Host:     "db.example.com",
		Database: "app",
		User:     "postgres",
		Password: "hunter2",
		Scheme:   "postgres",
		Port:     5432,
	}

	tests := []struct {
		name     string
		mutate   func(in *OriginInput)
		wantKind OriginKind
	}{
		{
			name:     "standard origin type",
			mutate:   func(in *OriginInput) { in.OriginType = "standard" },
			wantKind: OriginKindStandard,
		},
		{
			name: "access with both credentials",
			mutate: func(in *OriginInput) {
				in.OriginType = "access"
				in.AccessClientID = "client-id"
				in.AccessClientSecret = "client-secret"
			},
			wantKind: OriginKindAccess,
		},
		{
			name: "access with missing secret falls back to standard",
			mutate: func(in *OriginInput) {
				in.OriginType = "access"
				in.AccessClientID = "client-id"
			},
			wantKind: OriginKindStandard,
		},
		{
			name: "access with missing id falls back to standard",
			mutate: func(in *OriginInput) {
				in.OriginType = "access"
				in.AccessClientSecret = "client-secret"
			},
			wantKind: OriginKindStandard,
		},
		{
			name: "credentials without access origin type stay standard",
			mutate: func(in *OriginInput) {
				in.OriginType = "standard"
				in.AccessClientID = "client-id"
				in.AccessClientSecret = "client-secret"
			},
			wantKind: OriginKindStandard,
		},
		{
			name:     "empty origin type",
			mutate:   func(in *OriginInput) {},
			wantKind: OriginKindStandard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			origin := BuildOrigin(in)

			assert.Equal(t, tt.wantKind, origin.Kind)
			assert.Equal(t, in.Host, origin.Host)
			assert.Equal(t, in.Database, origin.Database)
			assert.Equal(t, in.User, origin.User)
			assert.Equal(t, in.Password, origin.Password)
			assert.Equal(t, in.Scheme, origin.Scheme)

			if tt.wantKind == OriginKindAccess {
				assert.Zero(t, origin.Port, "access origin must omit port")
				assert.Equal(t, in.AccessClientID, origin.AccessClientID)
				assert.Equal(t, in.AccessClientSecret, origin.AccessClientSecret)
			} else {
				assert.Equal(t, in.Port, origin.Port, "standard origin must carry port")
				assert.Empty(t, origin.AccessClientID)
				assert.Empty(t, origin.AccessClientSecret)
			}
		})
	}
}

func TestBuildCaching(t *testing.T) {
	disabled := true
	maxAge := int64(60)
	stale := int64(15)

	t.Run("all absent omits the policy", func(t *testing.T) {
		assert.Nil(t, BuildCaching(nil, nil, nil))
	})

	t.Run("single field keeps the others absent", func(t *testing.T) {
		policy := BuildCaching(&disabled, nil, nil)
		if assert.NotNil(t, policy) {
			assert.Equal(t, &disabled, policy.Disabled)
			assert.Nil(t, policy.MaxAge)
			assert.Nil(t, policy.StaleWhileRevalidate)
		}
	})

	t.Run("all fields pass through", func(t *testing.T) {
		policy := BuildCaching(&disabled, &maxAge, &stale)
		if assert.NotNil(t, policy) {
			assert.Equal(t, &disabled, policy.Disabled)
			assert.Equal(t, &maxAge, policy.MaxAge)
			assert.Equal(t, &stale, policy.StaleWhileRevalidate)
		}
	})
}
