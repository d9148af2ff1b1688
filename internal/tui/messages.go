package tui

import (
	"github.com/MKhiriev/go-library-keeper/internal/service"
	"github.com/MKhiriev/go-library-keeper/models"
)

// storeEventMsg carries a library store event into the update loop.
type storeEventMsg service.Event

// opDoneMsg reports the end of an operation started from the UI.
type opDoneMsg struct {
	op  string
	id  string
	err error
}

type savedMsg struct {
	id  string
	err error
}

// dlsiteMsg carries a fetched DLSite page back to the edit screen.
type dlsiteMsg struct {
	info models.DLSiteInfo
	err  error
}

type copiedMsg struct {
	status string
}

type clearStatusMsg struct{}

const (
	opOpen = "open"
	opCopy = "copy"
)
