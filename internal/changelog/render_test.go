package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderVersionString(t *testing.T) {
	tests := map[string]struct {
		version *Version
		want    string
	}{
		"single category": {
			version: &Version{Version: "0.9.1", Changes: Changes{Fixed: []string{"Fixed bug X"}}},
			want:    "### Fixed\n- Fixed bug X",
		},
		"categories in keep a changelog order": {
			version: &Version{Version: "0.9.1", Changes: Changes{
				Fixed:    []string{"Fixed bug X"},
				Added:    []string{"Added feature Y", "Added feature Z"},
				Security: []string{"Patched CVE"},
			}},
			want: "### Added\n- Added feature Y\n- Added feature Z\n\n### Fixed\n- Fixed bug X\n\n### Security\n- Patched CVE",
		},
		"empty": {
			version: &Version{Version: "0.9.1"},
			want:    "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := RenderVersionString(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderVersionString_Idempotent(t *testing.T) {
	v := &Version{Version: "1.0.0", Changes: Changes{Added: []string{"A"}, Removed: []string{"B"}}}

	first, err := RenderVersionString(v)
	require.NoError(t, err)
	second, err := RenderVersionString(v)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
