package models

import "strings"

// DLSiteInfo is the product page summary the executor scrapes for a DLSite
// work id.
type DLSiteInfo struct {
	Title        string   `json:"title"`
	Circle       string   `json:"circle"`
	Scenario     []string `json:"scenario"`
	Illustration []string `json:"illustration"`
	Category     []string `json:"category"`
	Tags         []string `json:"tags"`
	Description  []string `json:"description"`
}

// DescriptionText joins the description paragraphs with blank lines.
func (d DLSiteInfo) DescriptionText() string {
	return strings.Join(d.Description, "\n\n")
}
