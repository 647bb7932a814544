package decl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonDecls = `{
  "name": "d3d11",
  "enums": [
    {
      "name": "D3D11_USAGE",
      "underlyingType": "int",
      "items": [
        {"name": "D3D11_USAGE_DEFAULT", "value": "0"},
        {"name": "D3D11_USAGE_IMMUTABLE", "value": "1"}
      ]
    },
    {
      "name": "D3D11_BIND_FLAG",
      "underlyingType": "uint",
      "forceHasNoneMember": false,
      "items": [
        {"name": "D3D11_BIND_VERTEX_BUFFER", "value": "0x1"}
      ]
    }
  ]
}`

const yamlDecls = `name: d3d11
enums:
  - name: D3D11_USAGE
    underlyingType: int
    items:
      - name: D3D11_USAGE_DEFAULT
        value: "0"
      - name: D3D11_USAGE_IMMUTABLE
        value: "1"
  - name: D3D11_BIND_FLAG
    underlyingType: uint
    forceHasNoneMember: false
    items:
      - name: D3D11_BIND_VERTEX_BUFFER
        value: "0x1"
`

const tomlDecls = `name = "d3d11"

[[enums]]
name = "D3D11_USAGE"
underlyingType = "int"

  [[enums.items]]
  name = "D3D11_USAGE_DEFAULT"
  value = "0"

  [[enums.items]]
  name = "D3D11_USAGE_IMMUTABLE"
  value = "1"

[[enums]]
name = "D3D11_BIND_FLAG"
underlyingType = "uint"
forceHasNoneMember = false

  [[enums.items]]
  name = "D3D11_BIND_VERTEX_BUFFER"
  value = "0x1"
`

func TestLoadAllFormats(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"decls.json", jsonDecls},
		{"decls.yaml", yamlDecls},
		{"decls.toml", tomlDecls},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			m, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, "d3d11", m.Name)
			require.Len(t, m.Enums, 2)

			usage := m.Enums[0]
			assert.Equal(t, "D3D11_USAGE", usage.Name)
			assert.Equal(t, "int", usage.UnderlyingType)
			assert.Nil(t, usage.ForceHasNoneMember)
			require.Len(t, usage.Items, 2)
			assert.Equal(t, EnumItem{Name: "D3D11_USAGE_DEFAULT", Value: "0"}, usage.Items[0])
			assert.Equal(t, EnumItem{Name: "D3D11_USAGE_IMMUTABLE", Value: "1"}, usage.Items[1])

			bind := m.Enums[1]
			assert.Equal(t, "uint", bind.UnderlyingType)
			require.NotNil(t, bind.ForceHasNoneMember)
			assert.False(t, *bind.ForceHasNoneMember)
			assert.Equal(t, "0x1", bind.Items[0].Value)

			// 32-byte BLAKE2b digest, hex encoded.
			assert.Len(t, m.Digest, 64)
		})
	}
}

func TestLoadNameDefaultsToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "win32.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"enums": []}`), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "win32", m.Name)
}

func TestParseDigestIsStable(t *testing.T) {
	a, err := Parse([]byte(jsonDecls), ".json")
	require.NoError(t, err)
	b, err := Parse([]byte(jsonDecls), "json")
	require.NoError(t, err)
	assert.Equal(t, a.Digest, b.Digest)

	c, err := Parse([]byte(yamlDecls), ".yaml")
	require.NoError(t, err)
	assert.NotEqual(t, a.Digest, c.Digest)
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("enums: []"), ".ini")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
