package shape_test

import (
	"testing"

	"jobdesk-backend/pkg/shape"

	"github.com/stretchr/testify/assert"
)

type links struct {
	Repo string `json:"repo"`
	Demo string `json:"demo"`
}

func TestParseIfEncodedString(t *testing.T) {
	var out links
	err := shape.ParseIfEncoded(`{"repo":"https://git.example/x","demo":"https://x.example"}`, &out)
	assert.NoError(t, err)
	assert.Equal(t, "https://git.example/x", out.Repo)
	assert.Equal(t, "https://x.example", out.Demo)
}

func TestParseIfEncodedBytes(t *testing.T) {
	var out links
	err := shape.ParseIfEncoded([]byte(`{"repo":"r","demo":"d"}`), &out)
	assert.NoError(t, err)
	assert.Equal(t, "r", out.Repo)
}

func TestParseIfEncodedAlreadyStructured(t *testing.T) {
	var out links
	err := shape.ParseIfEncoded(map[string]interface{}{"repo": "r2", "demo": "d2"}, &out)
	assert.NoError(t, err)
	assert.Equal(t, "r2", out.Repo)
	assert.Equal(t, "d2", out.Demo)
}

func TestParseIfEncodedNilAndEmpty(t *testing.T) {
	out := links{Repo: "keep"}
	assert.NoError(t, shape.ParseIfEncoded(nil, &out))
	assert.NoError(t, shape.ParseIfEncoded("", &out))
	assert.NoError(t, shape.ParseIfEncoded([]byte(nil), &out))
	assert.Equal(t, "keep", out.Repo)
}

func TestParseIfEncodedInvalid(t *testing.T) {
	var out links
	assert.Error(t, shape.ParseIfEncoded("{not-json", &out))
}

func TestOrDefault(t *testing.T) {
	v := "https://cdn.example/me.png"
	empty := ""
	assert.Equal(t, v, shape.OrDefault(&v, shape.DefaultAvatarURL))
	assert.Equal(t, shape.DefaultAvatarURL, shape.OrDefault(nil, shape.DefaultAvatarURL))
	assert.Equal(t, shape.DefaultAvatarURL, shape.OrDefault(&empty, shape.DefaultAvatarURL))
}
