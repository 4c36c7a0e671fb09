package mailer

import (
	"fmt"

	"github.com/premium-auto/showroom-api/internal/models"
)

// Templates are pure functions of the record's public fields.

func BookingConfirmation(b *models.Booking) Message {
	variant := b.Variant
	if variant == "" {
		variant = "Not specified"
	}

	html := fmt.Sprintf(`
		<div>
			<h2>Booking Confirmation</h2>
			<p>Hi %s,</p>
			<p>Thank you for booking the %s with us! Here are your booking details:</p>
			<ul>
				<li><strong>Booking ID:</strong> %s</li>
				<li><strong>Vehicle:</strong> %s</li>
				<li><strong>Color:</strong> %s</li>
				<li><strong>Variant:</strong> %s</li>
			</ul>
			<p>Our sales representative will contact you soon to discuss the next steps.</p>
			<p>Best regards,<br/>Vehicle Showroom Team</p>
		</div>
	`, b.Name, b.Model, b.BookingID, b.Model, b.Color, variant)

	text := fmt.Sprintf(
		"Hi %s,\n\nThank you for booking the %s (%s). Your booking ID is %s. "+
			"Our sales representative will contact you soon to discuss the next steps.\n\nVehicle Showroom Team",
		b.Name, b.Model, b.Color, b.BookingID,
	)

	return Message{
		To:      b.Email,
		Subject: fmt.Sprintf("Booking Confirmation - %s", b.Model),
		HTML:    html,
		Text:    text,
	}
}

func TestDriveConfirmation(t *models.TestDrive) Message {
	html := fmt.Sprintf(`
		<div>
			<h2>Test Drive Confirmation</h2>
			<p>Hi %s,</p>
			<p>Thank you for scheduling a test drive with us! Here are the details:</p>
			<ul>
				<li><strong>Vehicle:</strong> %s</li>
				<li><strong>Date:</strong> %s</li>
				<li><strong>Time:</strong> %s</li>
			</ul>
			<p>Our team will reach out to you shortly to confirm the appointment.</p>
			<p>Best regards,<br/>Vehicle Showroom Team</p>
		</div>
	`, t.Name, t.VehicleModel, t.FormattedDate(), t.PreferredTime)

	text := fmt.Sprintf(
		"Hi %s,\n\nThank you for scheduling a test drive for %s on %s at %s. "+
			"Our team will reach out to you shortly to confirm the appointment.\n\nVehicle Showroom Team",
		t.Name, t.VehicleModel, t.FormattedDate(), t.PreferredTime,
	)

	return Message{
		To:      t.Email,
		Subject: fmt.Sprintf("Test Drive Confirmation - %s", t.VehicleModel),
		HTML:    html,
		Text:    text,
	}
}
