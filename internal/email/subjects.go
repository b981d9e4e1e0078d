package email

const (
	subjectHotLeadAlertFmt = "Hot lead: %s is ready for outreach"
)
