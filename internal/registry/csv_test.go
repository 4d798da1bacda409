package registry

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	svc := NewService(DefaultAccounts())

	dir := t.TempDir()
	path := filepath.Join(dir, "accounts.csv")
	require.NoError(t, svc.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.All(), 4)

	for _, orig := range svc.All() {
		got := loaded.FindByUsername(orig.Username())
		require.NotNil(t, got, "account %s should survive the round trip", orig.Username())
		assert.Equal(t, orig.Owner(), got.Owner())
		assert.Equal(t, orig.Credential(), got.Credential())
		assert.True(t, orig.InterestRate().Equal(got.InterestRate()))

		origMovs := orig.Movements()
		gotMovs := got.Movements()
		require.Len(t, gotMovs, len(origMovs))
		for i := range origMovs {
			assert.True(t, origMovs[i].Equal(gotMovs[i]), "movement %d of %s", i, orig.Username())
		}
	}
}

func TestReadAccounts(t *testing.T) {
	in := "owner,interest_rate,credential,movements\n" +
		"Jessica Davis,1.5,2222,200;-50;1300\n"

	accts, err := ReadAccounts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, accts, 1)
	assert.Equal(t, "Jessica Davis", accts[0].Owner())
	assert.Len(t, accts[0].Movements(), 3)
}

func TestReadAccountsEmptyMovements(t *testing.T) {
	in := "owner,interest_rate,credential,movements\n" +
		"Jessica Davis,1.5,2222,\n"

	accts, err := ReadAccounts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, accts, 1)
	assert.Empty(t, accts[0].Movements())
}

func TestUnmarshalAccountErrors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
	}{
		{"wrong field count", []string{"Jessica Davis", "1.5", "2222"}},
		{"empty owner", []string{"  ", "1.5", "2222", "200"}},
		{"bad rate", []string{"Jessica Davis", "x", "2222", "200"}},
		{"negative rate", []string{"Jessica Davis", "-1", "2222", "200"}},
		{"bad credential", []string{"Jessica Davis", "1.5", "pin", "200"}},
		{"bad movement", []string{"Jessica Davis", "1.5", "2222", "200;abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalAccount(tt.record)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
