package email

// PreviewData holds sample values for rendering each template outside a real
// send.
var PreviewData = map[Template]map[string]string{
	TemplateBookingConfirmation: {
		"UserName":      "Dana",
		"EventTitle":    "Go Meetup",
		"EventDate":     "Fri, 14 Mar 2025 18:00 UTC",
		"EventLocation": "Jakarta",
		"BookingID":     "1",
	},
}
