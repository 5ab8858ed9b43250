package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreference_Explicit(t *testing.T) {
	tests := []struct {
		pref     Preference
		explicit bool
		theme    Theme
	}{
		{PreferenceSystem, false, ThemeLight},
		{PreferenceLight, true, ThemeLight},
		{PreferenceDark, true, ThemeDark},
	}

	for _, tc := range tests {
		t.Run(tc.pref.String(), func(t *testing.T) {
			assert.Equal(t, tc.explicit, tc.pref.Explicit())
			th, ok := tc.pref.Theme()
			assert.Equal(t, tc.explicit, ok)
			assert.Equal(t, tc.theme, th)
		})
	}
}

func TestParsePreference(t *testing.T) {
	tests := []struct {
		in       string
		expected Preference
		wantErr  bool
	}{
		{"system", PreferenceSystem, false},
		{"", PreferenceSystem, false},
		{"light", PreferenceLight, false},
		{"dark", PreferenceDark, false},
		{"blue", Preference{}, true},
		{"Dark", Preference{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParsePreference(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestPersist_Aliases(t *testing.T) {
	p, err := ParsePersist("database")
	require.NoError(t, err)
	assert.Equal(t, PersistDB, p)

	d, err := ParseDBType("postgresql")
	require.NoError(t, err)
	assert.Equal(t, DBTypePostgres, d)
}
