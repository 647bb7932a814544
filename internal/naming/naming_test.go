package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRename(t *testing.T) {
	tests := []struct {
		name   string
		native string
		want   string
	}{
		{"single word", "USAGE", "Usage"},
		{"underscore separated", "VERTEX_BUFFER", "VertexBuffer"},
		{"mixed case words", "Render_target", "RenderTarget"},
		{"dash separated", "depth-stencil", "DepthStencil"},
		{"leading digit", "2D_ARRAY", "Num2dArray"},
		{"empty", "", ""},
	}

	var p Policy
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Rename(tt.native))
		})
	}
}

func TestRenameTrimmed(t *testing.T) {
	tests := []struct {
		name   string
		native string
		strip  string
		want   string
	}{
		{"prefix stripped", "D3D11_USAGE_DEFAULT", "D3D11_USAGE", "Default"},
		{"prefix with trailing separator", "D3D11_BIND_VERTEX_BUFFER", "D3D11_BIND_", "VertexBuffer"},
		{"prefix not present", "OTHER_VALUE", "D3D11_USAGE", "OtherValue"},
		{"name equals prefix", "D3D11_USAGE", "D3D11_USAGE", "D3d11Usage"},
		{"digit after strip", "TEX_1D", "TEX_", "Num1d"},
	}

	var p Policy
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.RenameTrimmed(tt.native, tt.strip))
		})
	}
}

func TestSanitizeLeadingDigit(t *testing.T) {
	assert.Equal(t, "Num1d", SanitizeLeadingDigit("1d"))
	assert.Equal(t, "Plain", SanitizeLeadingDigit("Plain"))
	assert.Equal(t, "", SanitizeLeadingDigit(""))
}
