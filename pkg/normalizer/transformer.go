package normalizer

import "bizclean/pkg/model"

// Transformer composes the company, email and address transforms into one
// record-level transform. It is stateless and safe to share across
// goroutines.
type Transformer struct {
	companies *CompanyCleaner
	emails    *EmailExtractor
}

func NewTransformer() *Transformer {
	return &Transformer{
		companies: NewCompanyCleaner(),
		emails:    NewEmailExtractor(),
	}
}

// NewTransformerWith lets callers inject customized transforms, e.g. an
// extended legal-suffix set or a different email grammar.
func NewTransformerWith(companies *CompanyCleaner, emails *EmailExtractor) *Transformer {
	return &Transformer{
		companies: companies,
		emails:    emails,
	}
}

func (t *Transformer) Transform(rec model.RawRecord) model.CleanedRecord {
	addr := ParseAddress(rec.Address)

	return model.CleanedRecord{
		CleanedName: t.companies.Clean(rec.CompanyName),
		Emails:      t.emails.Extract(rec.EmailParagraph),
		Street:      addr.Street,
		City:        addr.City,
		State:       addr.State,
		ZipCode:     addr.ZipCode,
	}
}

// TransformRows applies Transform to each record in order. A failure in one
// row degrades that row only: the result keeps the row's own company name
// and is marked Failed, and iteration continues. Output length always equals
// input length.
func (t *Transformer) TransformRows(records []model.RawRecord) []model.RowResult {
	results := make([]model.RowResult, 0, len(records))
	for _, rec := range records {
		results = append(results, t.transformRow(rec))
	}
	return results
}

func (t *Transformer) transformRow(rec model.RawRecord) (result model.RowResult) {
	defer func() {
		if r := recover(); r != nil {
			result = model.RowResult{
				CompanyName: rec.CompanyName,
				Failed:      true,
			}
		}
	}()

	cleaned := t.Transform(rec)
	return model.RowResult{
		CompanyName: rec.CompanyName,
		Record:      &cleaned,
	}
}
