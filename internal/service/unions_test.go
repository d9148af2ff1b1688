package service

import (
	"testing"

	"github.com/MKhiriev/go-library-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPlatform(t *testing.T) {
	tests := []struct {
		kind     models.PlatformKind
		id, name string
		want     models.Platform
	}{
		{models.PlatformUnknown, "x", "y", models.UnknownPlatform()},
		{"", "", "", models.UnknownPlatform()},
		{models.PlatformSteam, " 620 ", "ignored", models.SteamPlatform(" 620 ")},
		{models.PlatformDLSite, "RJ01", "", models.DLSitePlatform("RJ01")},
		{models.PlatformOther, "", " itch.io ", models.OtherPlatform(" itch.io ", "")},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := MapPlatform(tt.kind, tt.id, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MapPlatform("Itch", "", "")
	assert.ErrorIs(t, err, models.ErrUnknownVariant)
}

func TestMapArchiveInfo(t *testing.T) {
	got, err := MapArchiveInfo(models.ArchiveFile, "/a.7z", " pw ")
	require.NoError(t, err)
	assert.Equal(t, models.ArchiveFileInfo("/a.7z", " pw "), got)

	got, err = MapArchiveInfo(models.ArchiveDirectory, "/a", "pw")
	require.NoError(t, err)
	assert.Equal(t, "", got.Password())

	_, err = MapArchiveInfo("Tape", "", "")
	assert.ErrorIs(t, err, models.ErrUnknownVariant)
}

func TestMapDeployInfo(t *testing.T) {
	got, err := MapDeployInfo(models.DeployFile, "/g/a.exe")
	require.NoError(t, err)
	assert.Equal(t, models.FileDeploy("/g/a.exe"), got)

	got, err = MapDeployInfo(models.DeployUnset, "/g")
	require.NoError(t, err)
	assert.True(t, got.IsUnset())

	_, err = MapDeployInfo("Symlink", "")
	assert.ErrorIs(t, err, models.ErrUnknownVariant)
}

func TestDecompose_RoundTrip(t *testing.T) {
	platforms := []struct {
		name string
		p    models.Platform
	}{
		{"Unknown", models.UnknownPlatform()},
		{"Steam", models.SteamPlatform("730")},
		{"Steam padded", models.SteamPlatform(" 730 ")},
		{"DLSite", models.DLSitePlatform("RJ01")},
		{"Other with id", models.OtherPlatform("itch.io", "42")},
		{"Other without id", models.OtherPlatform("itch.io", "")},
		{"Other blank name", models.OtherPlatform("   ", "")},
	}
	for _, tt := range platforms {
		t.Run("platform/"+tt.name, func(t *testing.T) {
			m := models.NewEditableMetadata()
			m.Platform = tt.p

			f := Decompose(m)
			got, err := MapPlatform(f.PlatformKind, f.PlatformID, f.PlatformName)
			require.NoError(t, err)
			assert.Equal(t, tt.p, got)
		})
	}

	archives := []struct {
		name string
		a    models.ArchiveInfo
	}{
		{"Unset", models.UnsetArchive()},
		{"ArchiveFile with password", models.ArchiveFileInfo("/a.7z", "pw")},
		{"ArchiveFile without password", models.ArchiveFileInfo("/a.7z", "")},
		{"ArchiveFile padded", models.ArchiveFileInfo(" /a.7z ", " pw ")},
		{"CommonFile", models.CommonFileInfo("/a.bin")},
		{"Directory", models.DirectoryArchiveInfo("/games/a")},
		{"Directory whitespace", models.DirectoryArchiveInfo("  ")},
	}
	for _, tt := range archives {
		t.Run("archive/"+tt.name, func(t *testing.T) {
			m := models.NewEditableMetadata()
			m.ArchiveInfo = tt.a

			f := Decompose(m)
			got, err := MapArchiveInfo(f.ArchiveKind, f.ArchivePath, f.ArchivePassword)
			require.NoError(t, err)
			assert.Equal(t, tt.a, got)
		})
	}

	deploys := []struct {
		name string
		d    models.DeployInfo
	}{
		{"Unset", models.UnsetDeploy()},
		{"File", models.FileDeploy("/g/a.exe")},
		{"File padded", models.FileDeploy(" /g/a.exe ")},
		{"Directory", models.DirectoryDeploy("/g")},
	}
	for _, tt := range deploys {
		t.Run("deploy/"+tt.name, func(t *testing.T) {
			m := models.NewEditableMetadata()
			d := tt.d
			m.DeployInfo = &d

			f := Decompose(m)
			got, err := MapDeployInfo(f.DeployKind, f.DeployPath)
			require.NoError(t, err)
			assert.Equal(t, tt.d, got)
		})
	}
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "a", "c"}, SplitTags("a, b, a, c"))
	assert.Equal(t, []string{"x", "y"}, SplitTags("  x\t\ny  "))
	assert.Empty(t, SplitTags(" ; , "))
}

func TestSanitize(t *testing.T) {
	m := models.NewEditableMetadata()
	m.Title = " Alpha "
	m.Alias = []string{" ", "A "}
	m.Description = strPtr("   ")
	m.Version = strPtr(" 1.0 ")

	sanitize(&m)

	assert.Equal(t, "Alpha", m.Title)
	assert.Equal(t, []string{"A"}, m.Alias)
	assert.Nil(t, m.Description)
	assert.Equal(t, "1.0", *m.Version)
}

func TestSanitize_UnionPayloads(t *testing.T) {
	tests := []struct {
		name   string
		in     func(m *models.EditableMetadata)
		verify func(t *testing.T, m models.EditableMetadata)
	}{
		{
			name: "steam id",
			in:   func(m *models.EditableMetadata) { m.Platform = models.SteamPlatform(" 730 ") },
			verify: func(t *testing.T, m models.EditableMetadata) {
				assert.Equal(t, models.SteamPlatform("730"), m.Platform)
			},
		},
		{
			name: "other name and blank id",
			in:   func(m *models.EditableMetadata) { m.Platform = models.OtherPlatform(" itch.io ", "  ") },
			verify: func(t *testing.T, m models.EditableMetadata) {
				assert.Equal(t, models.OtherPlatform("itch.io", ""), m.Platform)
			},
		},
		{
			name: "archive path and password",
			in:   func(m *models.EditableMetadata) { m.ArchiveInfo = models.ArchiveFileInfo(" /a.7z ", " pw ") },
			verify: func(t *testing.T, m models.EditableMetadata) {
				assert.Equal(t, models.ArchiveFileInfo("/a.7z", "pw"), m.ArchiveInfo)
			},
		},
		{
			name: "directory deploy",
			in: func(m *models.EditableMetadata) {
				d := models.DirectoryDeploy("\t/g\n")
				m.DeployInfo = &d
			},
			verify: func(t *testing.T, m models.EditableMetadata) {
				require.NotNil(t, m.DeployInfo)
				assert.Equal(t, models.DirectoryDeploy("/g"), *m.DeployInfo)
			},
		},
		{
			name: "empty variants untouched",
			in:   func(m *models.EditableMetadata) {},
			verify: func(t *testing.T, m models.EditableMetadata) {
				assert.True(t, m.Platform.IsUnknown())
				assert.True(t, m.ArchiveInfo.IsUnset())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := models.NewEditableMetadata()
			tt.in(&m)
			sanitize(&m)
			tt.verify(t, m)
		})
	}
}
