package models

// File permissions
const (
	PermissionDataFile   = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)

// ISODateLayout is the on-disk date format of expense records.
const ISODateLayout = "2006-01-02"
