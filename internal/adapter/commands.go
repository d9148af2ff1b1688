package adapter

import "github.com/MKhiriev/go-library-keeper/models"

// Executor command names.
const (
	OpMetadataGetAll    = "metadata_get_all"
	OpMetadataGet       = "metadata_get"
	OpMetadataUpdate    = "metadata_update"
	OpMetadataRemove    = "metadata_remove"
	OpMetadataDeploy    = "metadata_deploy"
	OpMetadataDeployOff = "metadata_deploy_off"
	OpLibraryClear      = "library_clear"
	OpLibraryExport     = "library_export"
	OpLibraryImport     = "library_import"
	OpResolveAbsolute   = "util_resolve_absolute"
	OpFetchDLSite       = "api_fetch_dl_site_maniax"
)

// Ops lists every command in a stable order.
var Ops = []string{
	OpMetadataGetAll,
	OpMetadataGet,
	OpMetadataUpdate,
	OpMetadataRemove,
	OpMetadataDeploy,
	OpMetadataDeployOff,
	OpLibraryClear,
	OpLibraryExport,
	OpLibraryImport,
	OpResolveAbsolute,
	OpFetchDLSite,
}

// Argument objects, field names as the executor expects them.

type noArgs struct{}

type keyArgs struct {
	Key string `json:"key"`
}

type updateArgs struct {
	Opt models.MetadataOptional `json:"opt"`
}

type deployArgs struct {
	Key    string `json:"key"`
	Target string `json:"target"`
}

type pathArgs struct {
	Path string `json:"path"`
}

type idArgs struct {
	ID string `json:"id"`
}
