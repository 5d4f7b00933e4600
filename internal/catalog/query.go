package catalog

import "strings"

// searchLimit caps how many records a search returns.
const searchLimit = 5

// FindByPartNumber returns the record whose part number matches id,
// case-insensitively. The second return value is false when the part is
// unknown.
func (c *Catalog) FindByPartNumber(id string) (*PartRecord, bool) {
	idx, ok := c.byNumber[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, false
	}
	return &c.parts[idx], true
}

// Search returns up to 5 records whose name, description, part number, or
// any symptom contains the query as a case-insensitive substring, in
// catalog order.
func (c *Catalog) Search(query string) []PartRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []PartRecord
	for _, p := range c.parts {
		if matchesQuery(&p, q) {
			results = append(results, p)
			if len(results) == searchLimit {
				break
			}
		}
	}
	return results
}

func matchesQuery(p *PartRecord, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.PartNumber), q) {
		return true
	}
	return symptomMatches(p, q)
}

// FindBySymptom returns up to 5 records with at least one symptom
// containing the given text as a case-insensitive substring.
func (c *Catalog) FindBySymptom(symptom string) []PartRecord {
	q := strings.ToLower(strings.TrimSpace(symptom))
	if q == "" {
		return nil
	}

	var results []PartRecord
	for _, p := range c.parts {
		if symptomMatches(&p, q) {
			results = append(results, p)
			if len(results) == searchLimit {
				break
			}
		}
	}
	return results
}

func symptomMatches(p *PartRecord, q string) bool {
	for _, s := range p.SymptomsFixed {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// CompatibilityResult describes whether a part fits a given model.
type CompatibilityResult struct {
	Part             *PartRecord
	ModelNumber      string
	IsCompatible     bool
	CompatibleModels []string
}

// CheckCompatibility reports whether the part identified by partNumber is
// compatible with modelNumber. The second return value is false when the
// part number is unknown.
func (c *Catalog) CheckCompatibility(partNumber, modelNumber string) (*CompatibilityResult, bool) {
	part, ok := c.FindByPartNumber(partNumber)
	if !ok {
		return nil, false
	}
	return &CompatibilityResult{
		Part:             part,
		ModelNumber:      modelNumber,
		IsCompatible:     part.CompatibleWith(modelNumber),
		CompatibleModels: part.CompatibleModels,
	}, true
}
