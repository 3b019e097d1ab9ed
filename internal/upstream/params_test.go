package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lite-lake/cloudflare-mcp/internal/shape"
)

func TestNewOriginParam(t *testing.T) {
	base := shape.Origin{
		Host:     "db.example.com",
		Database: "app",
		User:     "postgres",
		Password: "hunter2",
		Scheme:   "postgres",
	}

	t.Run("standard origin carries port, no access fields", func(t *testing.T) {
		origin := base
		origin.Kind = shape.OriginKindStandard
		origin.Port = 5432

		param := newOriginParam(origin)
		assert.True(t, param.Port.Present)
		assert.Equal(t, int64(5432), param.Port.Value)
		assert.False(t, param.AccessClientID.Present)
		assert.False(t, param.AccessClientSecret.Present)
		assert.Equal(t, "hunter2", param.Password.Value)
	})

	t.Run("access origin carries credentials, no port", func(t *testing.T) {
		origin := base
		origin.Kind = shape.OriginKindAccess
		origin.AccessClientID = "client-id"
		origin.AccessClientSecret = "client-secret"

		param := newOriginParam(origin)
		assert.False(t, param.Port.Present)
		assert.True(t, param.AccessClientID.Present)
		assert.Equal(t, "client-id", param.AccessClientID.Value)
		assert.True(t, param.AccessClientSecret.Present)
		assert.Equal(t, "client-secret", param.AccessClientSecret.Value)
	})
}

func TestNewCachingParam(t *testing.T) {
	t.Run("nil policy is omitted", func(t *testing.T) {
		_, ok := newCachingParam(nil)
		assert.False(t, ok)
	})

	t.Run("partial policy keeps absent fields absent", func(t *testing.T) {
		disabled := true
		param, ok := newCachingParam(&shape.CachingPolicy{Disabled: &disabled})
		assert.True(t, ok)
		assert.True(t, param.Disabled.Present)
		assert.True(t, param.Disabled.Value)
		assert.False(t, param.MaxAge.Present)
		assert.False(t, param.StaleWhileRevalidate.Present)
	})
}

func TestRecordParam(t *testing.T) {
	change := RecordChange{
		Name:    "a.example.com",
		Content: "192.0.2.1",
		Type:    "A",
	}

	t.Run("create defaults ttl to automatic", func(t *testing.T) {
		record := recordParam(change, true)
		assert.True(t, record.TTL.Present)
		assert.EqualValues(t, 1, record.TTL.Value)
		assert.True(t, record.Name.Present)
		assert.False(t, record.Comment.Present)
		assert.False(t, record.Proxied.Present)
	})

	t.Run("edit leaves ttl untouched", func(t *testing.T) {
		edit := change
		edit.Name = ""
		record := recordParam(edit, false)
		assert.False(t, record.TTL.Present)
		assert.False(t, record.Name.Present)
		assert.True(t, record.Content.Present)
	})

	t.Run("optional fields pass through", func(t *testing.T) {
		comment := "managed"
		proxied := true
		withOpts := change
		withOpts.Comment = &comment
		withOpts.Proxied = &proxied

		record := recordParam(withOpts, true)
		assert.True(t, record.Comment.Present)
		assert.Equal(t, "managed", record.Comment.Value)
		assert.True(t, record.Proxied.Present)
		assert.True(t, record.Proxied.Value)
	})
}
