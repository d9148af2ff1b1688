package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		wire     string
	}{
		{name: "unknown", platform: UnknownPlatform(), wire: `"Unknown"`},
		{name: "steam", platform: SteamPlatform("570"), wire: `{"Steam":{"id":"570"}}`},
		{name: "dlsite", platform: DLSitePlatform("RJ01"), wire: `{"DLSite":{"id":"RJ01"}}`},
		{name: "other with id", platform: OtherPlatform("itch", "42"), wire: `{"Other":{"name":"itch","id":"42"}}`},
		{name: "other without id", platform: OtherPlatform("GOG", ""), wire: `{"Other":{"name":"GOG"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.platform)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(data))

			var got Platform
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.platform, got)
		})
	}
}

func TestPlatform_ZeroValueIsUnknown(t *testing.T) {
	var p Platform
	assert.True(t, p.IsUnknown())
	assert.False(t, p.IsSteam())
	assert.Equal(t, PlatformUnknown, p.Kind())
}

func TestPlatform_ExactlyOnePredicate(t *testing.T) {
	for _, p := range []Platform{UnknownPlatform(), SteamPlatform("1"), DLSitePlatform("2"), OtherPlatform("x", "")} {
		matches := 0
		for _, ok := range []bool{p.IsUnknown(), p.IsSteam(), p.IsDLSite(), p.IsOther()} {
			if ok {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "platform %s", p.Kind())
	}
}

func TestPlatform_DecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		wire    string
		wantErr error
	}{
		{name: "unknown tag", wire: `{"Epic":{"id":"1"}}`, wantErr: ErrUnknownVariant},
		{name: "wrong sentinel", wire: `"Unset"`, wantErr: ErrUnknownVariant},
		{name: "two keys", wire: `{"Steam":{"id":"1"},"DLSite":{"id":"2"}}`, wantErr: ErrMalformedVariant},
		{name: "empty object", wire: `{}`, wantErr: ErrMalformedVariant},
		{name: "payload variant as string", wire: `"Steam"`, wantErr: ErrMalformedVariant},
		{name: "sentinel with payload", wire: `{"Unknown":{}}`, wantErr: ErrMalformedVariant},
		{name: "null", wire: `null`, wantErr: ErrMalformedVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Platform
			err := json.Unmarshal([]byte(tt.wire), &p)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlatform_Label(t *testing.T) {
	assert.Equal(t, "Unknown", UnknownPlatform().Label())
	assert.Equal(t, "Steam (570)", SteamPlatform("570").Label())
	assert.Equal(t, "DLSite (RJ01)", DLSitePlatform("RJ01").Label())
	assert.Equal(t, "Other (itch, ID: 42)", OtherPlatform("itch", "42").Label())
	assert.Equal(t, "Other (GOG)", OtherPlatform("GOG", "").Label())
}

func TestArchiveInfo_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		archive ArchiveInfo
		wire    string
	}{
		{name: "unset", archive: UnsetArchive(), wire: `"Unset"`},
		{name: "archive file with password", archive: ArchiveFileInfo("/a.zip", "pw"), wire: `{"ArchiveFile":{"path":"/a.zip","password":"pw"}}`},
		{name: "archive file without password", archive: ArchiveFileInfo("/a.zip", ""), wire: `{"ArchiveFile":{"path":"/a.zip"}}`},
		{name: "common file", archive: CommonFileInfo("/b.iso"), wire: `{"CommonFile":{"path":"/b.iso"}}`},
		{name: "directory", archive: DirectoryArchiveInfo("/games/c"), wire: `{"Directory":{"path":"/games/c"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.archive)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(data))

			var got ArchiveInfo
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.archive, got)
		})
	}
}

func TestArchiveInfo_RejectsPlatformSentinel(t *testing.T) {
	var a ArchiveInfo
	assert.ErrorIs(t, json.Unmarshal([]byte(`"Unknown"`), &a), ErrUnknownVariant)
}

func TestDeployInfo_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		deploy DeployInfo
		wire   string
	}{
		{name: "unset", deploy: UnsetDeploy(), wire: `"Unset"`},
		{name: "file", deploy: FileDeploy("/opt/app.exe"), wire: `{"File":{"path":"/opt/app.exe"}}`},
		{name: "directory", deploy: DirectoryDeploy("/opt/app"), wire: `{"Directory":{"path":"/opt/app"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.deploy)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wire, string(data))

			var got DeployInfo
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.deploy, got)
		})
	}
}

func TestDeployInfo_RejectsArchiveOnlyVariant(t *testing.T) {
	var d DeployInfo
	err := json.Unmarshal([]byte(`{"CommonFile":{"path":"/x"}}`), &d)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestParseKinds(t *testing.T) {
	k, err := ParsePlatformKind("DLSite")
	require.NoError(t, err)
	assert.Equal(t, PlatformDLSite, k)

	_, err = ParseArchiveKind("Zip")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	d, err := ParseDeployKind("File")
	require.NoError(t, err)
	assert.Equal(t, DeployFile, d)
}
