package spreadsheet

// Column headers of the source workbook. Cells under headers not present in
// the source are read as empty strings, never as an error.
const (
	ColCompanyName    = "Company Name"
	ColEmailParagraph = "Email (Paragraph)"
	ColAddress        = "Address"
)

// Column headers of the cleaned workbook.
const (
	ColEmails  = "Emails"
	ColStreet  = "Street"
	ColCity    = "City"
	ColState   = "State"
	ColZipCode = "Zip Code"
)

// ErrorMarker is written to the Emails column of a row whose transform
// failed.
const ErrorMarker = "ERROR"

const emailSeparator = ", "
