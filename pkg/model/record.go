package model

// RawRecord is one business contact as the caller supplied it, either as a
// JSON body or as one spreadsheet row. Absent source cells arrive as empty
// strings.
type RawRecord struct {
	CompanyName    string `json:"company_name" validate:"max=2000"`
	EmailParagraph string `json:"email_paragraph" validate:"max=100000"`
	Address        string `json:"address" validate:"max=2000"`
}

// CleanedRecord is the normalized output for one RawRecord. The four address
// fields are nil when the address lacked the structure to derive them; nil
// means "could not be determined", never "matched but empty".
type CleanedRecord struct {
	CleanedName string   `json:"cleaned_name"`
	Emails      []string `json:"emails"`
	Street      *string  `json:"street"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	ZipCode     *string  `json:"zip_code"`
}

// RowResult is the per-row outcome of a bulk transform: either a cleaned
// record, or a failure marker that still carries the row's company name so
// the output row count always matches the input.
type RowResult struct {
	CompanyName string
	Record      *CleanedRecord
	Failed      bool
}
