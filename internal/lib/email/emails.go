package email

// BookingDetails is what the confirmation email shows.
type BookingDetails struct {
	BookingID     string
	UserName      string
	EventTitle    string
	EventDate     string
	EventLocation string
}

func (c *Client) SendBookingConfirmationEmail(to string, d BookingDetails) error {
	data := map[string]string{
		"BookingID":     d.BookingID,
		"UserName":      d.UserName,
		"EventTitle":    d.EventTitle,
		"EventDate":     d.EventDate,
		"EventLocation": d.EventLocation,
	}

	return c.SendEmail(
		to,
		"Booking confirmed: "+d.EventTitle,
		TemplateBookingConfirmation,
		data,
	)
}
