package cli

import "errors"

var (
	errConfirmationRequired = errors.New("refusing to clear the library without --yes")
	errItemNotFound         = errors.New("item not found")
	errDLSiteIDRequired     = errors.New("--from-dlsite needs --platform DLSite and --platform-id")
)
