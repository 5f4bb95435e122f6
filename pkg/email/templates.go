package email

import (
	"fmt"
)

// PartnerEmailData carries the fields used by partner notification templates.
type PartnerEmailData struct {
	PartnerName  string
	PatientName  string
	Email        string
	HospitalName string
	SupportEmail string
}

// BuildPartnerLinkedEmail notifies a partner that they have been registered
// as the contact for a patient record.
func BuildPartnerLinkedEmail(data PartnerEmailData) Message {
	hospital := data.HospitalName
	if hospital == "" {
		hospital = "Aram Health"
	}

	name := data.PartnerName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("You are now the registered contact for %s", data.PatientName)

	textBody := fmt.Sprintf(`Hi %s,

You have been registered as the contact partner for %s at %s.

We will reach out to this address if the care team needs to contact you.
If you believe this is a mistake, reply to this email or contact %s.

Thanks,
%s`,
		name, data.PatientName, hospital, data.SupportEmail, hospital)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>You have been registered as the contact partner for <strong>%s</strong> at %s.</p>
    <p>We will reach out to this address if the care team needs to contact you.</p>
    <p style="color: #6b7280; font-size: 14px;">If you believe this is a mistake, reply to this email or contact %s.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>%s</p>
</body>
</html>`,
		name, data.PatientName, hospital, data.SupportEmail, hospital)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildPatientReportEmail wraps a rendered status report for delivery to
// the patient's own address. The report document is the HTML body.
func BuildPatientReportEmail(to, patientName, reportHTML, hospitalName string) Message {
	hospital := hospitalName
	if hospital == "" {
		hospital = "Aram Health"
	}

	subject := fmt.Sprintf("Patient status report for %s", patientName)

	textBody := fmt.Sprintf(`Hi %s,

Your patient status report from %s is attached as the HTML body of this
email. Open it in any mail client or browser to view it.

%s`,
		patientName, hospital, hospital)

	return Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: reportHTML,
	}
}

// BuildSeriousStateAlertEmail notifies a partner that the linked patient's
// condition has been recorded as serious.
func BuildSeriousStateAlertEmail(data PartnerEmailData) Message {
	hospital := data.HospitalName
	if hospital == "" {
		hospital = "Aram Health"
	}

	name := data.PartnerName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Update on %s's condition", data.PatientName)

	textBody := fmt.Sprintf(`Hi %s,

The care team at %s has updated %s's condition to serious.

Please contact the hospital for details. Condition specifics are never
included in email.

%s`,
		name, hospital, data.PatientName, hospital)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">Hi %s,</h2>
    <p>The care team at %s has updated <strong>%s</strong>'s condition to serious.</p>
    <p>Please contact the hospital for details. Condition specifics are never included in email.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">%s</p>
</body>
</html>`,
		name, hospital, data.PatientName, hospital)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
